package handlers

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
	"net/http"
)

// reportingHandler handles HTTP requests for tax reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the tax report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	staffOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff)

	reports := rg.Group("/reports", staffOnly)
	{
		reports.GET("/tax-rates", h.taxRateSummary)
		reports.GET("/products", h.productTaxBreakdowns)
	}
}

// taxRateSummary godoc
// @Summary GST summary per tax rate
// @Description Aggregates the catalog's active selling prices per GST rate,
// @Description with base/tax/final sums and grand totals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TaxRateSummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build tax summary"
// @Security BearerAuth
// @Router /reports/tax-rates [get]
func (h *reportingHandler) taxRateSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.TaxRateSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build tax summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaxRateSummaryResponse(rows))
}

// productTaxBreakdowns godoc
// @Summary Per-product tax decomposition
// @Description Decomposes the selling and purchase price of every active
// @Description catalog item into base, tax and final amounts
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ProductTaxBreakdownListResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build tax breakdown"
// @Security BearerAuth
// @Router /reports/products [get]
func (h *reportingHandler) productTaxBreakdowns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.ProductTaxBreakdowns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build tax breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.ToProductTaxBreakdownListResponse(rows))
}
