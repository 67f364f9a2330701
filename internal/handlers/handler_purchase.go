package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests related to purchase bills.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ps portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{
		purchaseService: ps,
	}
}

// registerPurchaseRoutes registers routes related to purchase bills.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	staffOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff)

	purchases := rg.Group("/purchases", staffOnly)
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.PUT("/:id", h.replacePurchase)
		purchases.POST("/:id/payments", h.recordPayment)
		purchases.DELETE("/:id", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Create a purchase bill
// @Description Prices the requested lines, freezes the bill summary and
// @Description payment state, and increments stock for each line
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   purchase body dto.CreatePurchaseRequest true "Purchase bill details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Duplicate bill number"
// @Failure 500 {object} ErrorResponse "Failed to create purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create purchase",
		slog.String("vendor_id", req.VendorID),
		slog.Int("line_count", len(req.Items)),
	)

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create purchase")
		return
	}

	logger.Info("Purchase created successfully", slog.String("purchase_id", purchase.PurchaseID))
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// getPurchase godoc
// @Summary Get a purchase bill by ID
// @Description Retrieves a purchase bill with its frozen lines and summary
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve purchase"
// @Security BearerAuth
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	purchase, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), purchaseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve purchase")
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List purchase bills
// @Description Retrieves a page of purchase bills, newest first, optionally
// @Description filtered by vendor and date range
// @Tags purchases
// @Produce  json
// @Param   vendorID query string false "Restrict to one vendor"
// @Param   from query string false "Start date (RFC3339 or yyyy-mm-dd)"
// @Param   to query string false "End date (RFC3339 or yyyy-mm-dd)"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Token for the next page"
// @Success 200 {object} dto.ListPurchasesResponse
// @Failure 400 {object} ErrorResponse "Invalid filter or pagination token"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	from, ok := parseDateQuery(c, "from")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'from' date"})
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'to' date"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	params := portsrepo.ListPurchasesParams{
		VendorID:  c.Query("vendorID"),
		From:      from,
		To:        to,
		Limit:     limit,
		NextToken: c.Query("nextToken"),
	}

	purchases, nextToken, err := h.purchaseService.ListPurchases(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPurchasesResponse(purchases, nextToken))
}

// replacePurchase godoc
// @Summary Replace a purchase bill
// @Description Supersedes a saved bill with a fully recomputed document,
// @Description netting the stock movement against the original lines
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Param   purchase body dto.CreatePurchaseRequest true "Full replacement bill"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to replace purchase"
// @Security BearerAuth
// @Router /purchases/{id} [put]
func (h *purchaseHandler) replacePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for replacePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.ReplacePurchase(c.Request.Context(), purchaseID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to replace purchase")
		return
	}

	logger.Info("Purchase replaced successfully", slog.String("purchase_id", purchaseID))
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// recordPayment godoc
// @Summary Record a payment against a purchase bill
// @Description Adds the paid amount and re-derives the settlement status
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Non-positive amount"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /purchases/{id}/payments [post]
func (h *purchaseHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	purchase, err := h.purchaseService.RecordPayment(c.Request.Context(), purchaseID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Payment recorded against purchase", slog.String("purchase_id", purchaseID))
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// deletePurchase godoc
// @Summary Delete a purchase bill
// @Description Removes a bill and reverses the stock it added
// @Tags purchases
// @Produce  json
// @Param   id path string true "Purchase ID"
// @Success 204 "Purchase deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Purchase not found"
// @Failure 500 {object} ErrorResponse "Failed to delete purchase"
// @Security BearerAuth
// @Router /purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	purchaseID := c.Param("id")

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.purchaseService.DeletePurchase(c.Request.Context(), purchaseID, updaterUserID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete purchase")
		return
	}

	logger.Info("Purchase deleted", slog.String("purchase_id", purchaseID))
	c.Status(http.StatusNoContent)
}
