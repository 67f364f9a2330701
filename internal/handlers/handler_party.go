package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler handles HTTP requests for customers and vendors. The same
// handler serves both groups; the party kind comes from the route.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
	kind         domain.PartyKind
}

// newPartyHandler creates a new partyHandler bound to one party kind.
func newPartyHandler(ps portssvc.PartySvcFacade, kind domain.PartyKind) *partyHandler {
	return &partyHandler{
		partyService: ps,
		kind:         kind,
	}
}

// registerPartyRoutes registers the /customers and /vendors route groups.
func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	staffOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleStaff)

	for _, group := range []struct {
		path string
		kind domain.PartyKind
	}{
		{"/customers", domain.PartyCustomer},
		{"/vendors", domain.PartyVendor},
	} {
		h := newPartyHandler(partyService, group.kind)
		parties := rg.Group(group.path, staffOnly)
		{
			parties.POST("", h.createParty)
			parties.GET("", h.listParties)
			parties.GET("/:id", h.getParty)
			parties.PUT("/:id", h.updateParty)
			parties.DELETE("/:id", h.deleteParty)
			parties.GET("/:id/ledger", h.getLedger)
			parties.POST("/:id/payments", h.recordPayment)
		}
	}
}

// createParty godoc
// @Summary Create a customer or vendor
// @Description Creates a party record; the kind comes from the route group
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   party body dto.CreatePartyRequest true "Party details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create party"
// @Security BearerAuth
// @Router /customers [post]
func (h *partyHandler) createParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	logger.Info("Received request to create party", slog.String("kind", string(h.kind)), slog.String("name", req.Name))

	party, err := h.partyService.CreateParty(c.Request.Context(), h.kind, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create party")
		return
	}

	logger.Info("Party created successfully", slog.String("party_id", party.PartyID))
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// getParty godoc
// @Summary Get a party by ID
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve party"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *partyHandler) getParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	party, err := h.partyService.GetPartyByID(c.Request.Context(), partyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve party")
		return
	}
	if party.Kind != h.kind {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "resource not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// listParties godoc
// @Summary List parties of the route's kind
// @Tags parties
// @Produce  json
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list parties"
// @Security BearerAuth
// @Router /customers [get]
func (h *partyHandler) listParties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	parties, err := h.partyService.ListParties(c.Request.Context(), h.kind)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list parties")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// updateParty godoc
// @Summary Update a party
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   party body dto.UpdatePartyRequest true "Fields to update"
// @Success 200 {object} dto.PartyResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to update party"
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *partyHandler) updateParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var req dto.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateParty", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	party, err := h.partyService.UpdateParty(c.Request.Context(), partyID, req, updaterUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update party")
		return
	}

	logger.Info("Party updated successfully", slog.String("party_id", partyID))
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// deleteParty godoc
// @Summary Delete a party
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 204 "Party deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to delete party"
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *partyHandler) deleteParty(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	if err := h.partyService.DeleteParty(c.Request.Context(), partyID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete party")
		return
	}

	logger.Info("Party deleted", slog.String("party_id", partyID))
	c.Status(http.StatusNoContent)
}

// getLedger godoc
// @Summary Get a party's ledger statement
// @Description Folds the party's documents and manual payments into a
// @Description chronological statement with running balances and closing dues
// @Tags parties
// @Produce  json
// @Param   id path string true "Party ID"
// @Success 200 {object} dto.LedgerStatementResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to build ledger"
// @Security BearerAuth
// @Router /customers/{id}/ledger [get]
func (h *partyHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	statement, err := h.partyService.GetLedger(c.Request.Context(), partyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerStatementResponse(statement))
}

// recordPayment godoc
// @Summary Record a manual payment for a party
// @Description Records a standalone payment; direction follows the party
// @Description kind (received from customers, made to vendors)
// @Tags parties
// @Accept  json
// @Produce  json
// @Param   id path string true "Party ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} ErrorResponse "Non-positive amount"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /customers/{id}/payments [post]
func (h *partyHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("id")

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.partyService.RecordPayment(c.Request.Context(), partyID, req, creatorUserID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Manual payment recorded", slog.String("party_id", partyID), slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}
