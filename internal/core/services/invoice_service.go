package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// validateLineRequest rejects non-positive quantities, negative amounts and
// percentages outside [0, 100] before any arithmetic runs.
func validateLineRequest(unitAmount decimal.Decimal, quantity int64, discountPercent, taxPercent decimal.Decimal) error {
	if quantity <= 0 {
		return apperrors.NewAppError(400, "quantity must be positive", apperrors.ErrValidation)
	}
	if unitAmount.IsNegative() {
		return apperrors.NewAppError(400, "unit amount cannot be negative", apperrors.ErrValidation)
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(maxTaxRate) {
		return apperrors.NewAppError(400, "discount percent must be between 0 and 100", apperrors.ErrValidation)
	}
	if taxPercent.IsNegative() || taxPercent.GreaterThan(maxTaxRate) {
		return apperrors.NewAppError(400, "tax percent must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

type invoiceService struct {
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	productRepo portsrepo.ProductRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
}

// NewInvoiceService creates a new instance of invoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	partyRepo portsrepo.PartyRepositoryFacade,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		partyRepo:   partyRepo,
	}
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find invoice by ID in repository", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		}
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params portsrepo.ListInvoicesParams) ([]domain.Invoice, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	invoices, token, err := s.invoiceRepo.ListInvoices(ctx, params)
	if err != nil {
		logger.Error("Failed to list invoices from repository", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return invoices, token, nil
}

// CreateInvoice prices the requested lines, freezes the document summary and
// settlement state, then persists the invoice and its stock decrements in one
// transaction.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, stockDeltas, err := s.buildInvoice(ctx, uuid.NewString(), req, creatorUserID, creatorUserID, time.Time{})
	if err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, *invoice, stockDeltas); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save invoice", slog.String("error", err.Error()), slog.String("invoice_number", req.InvoiceNumber))
		}
		return nil, err
	}

	logger.Info("Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("grand_total", invoice.GrandTotal.String()))
	return invoice, nil
}

// ReplaceInvoice supersedes a saved invoice with a fully recomputed document.
// The stock consumed by the old items is handed back and the new items'
// consumption applied, netted per product, in the same transaction.
func (s *invoiceService) ReplaceInvoice(ctx context.Context, invoiceID string, req dto.CreateInvoiceRequest, updaterUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice, stockDeltas, err := s.buildInvoice(ctx, invoiceID, req, existing.CreatedBy, updaterUserID, existing.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Hand back the old consumption before charging the new one.
	for _, item := range existing.Items {
		stockDeltas[item.ProductID] += item.Quantity
	}

	if err := s.invoiceRepo.ReplaceInvoice(ctx, *invoice, stockDeltas); err != nil {
		logger.Error("Failed to replace invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	logger.Info("Invoice replaced", slog.String("invoice_id", invoiceID))
	return invoice, nil
}

// RecordPayment adds a payment amount to the invoice and re-derives its
// settlement status. The frozen totals are never touched.
func (s *invoiceService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, updaterUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice.AmountPaid = invoice.AmountPaid.Add(req.Amount)
	invoice.Balance, invoice.PaymentStatus = pricing.DerivePaymentState(invoice.GrandTotal, invoice.AmountPaid)
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = updaterUserID

	if err := s.invoiceRepo.UpdatePaymentState(ctx, *invoice); err != nil {
		logger.Error("Failed to update invoice payment state", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return nil, err
	}

	logger.Info("Invoice payment recorded",
		slog.String("invoice_id", invoiceID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(invoice.PaymentStatus)))
	return invoice, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, invoiceID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return err
	}

	// Deleting a sale hands its stock back.
	stockDeltas := make(map[string]int64, len(invoice.Items))
	for _, item := range invoice.Items {
		stockDeltas[item.ProductID] += item.Quantity
	}

	if err := s.invoiceRepo.DeleteInvoice(ctx, invoiceID, stockDeltas); err != nil {
		logger.Error("Failed to delete invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		return err
	}

	logger.Info("Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}

// buildInvoice validates the request, prices every line and freezes the
// document summary. createdAt is zero for new documents.
func (s *invoiceService) buildInvoice(ctx context.Context, invoiceID string, req dto.CreateInvoiceRequest, creatorUserID, updaterUserID string, createdAt time.Time) (*domain.Invoice, map[string]int64, error) {
	if len(req.Items) == 0 {
		return nil, nil, apperrors.NewAppError(400, "invoice must have at least one item", apperrors.ErrValidation)
	}
	if req.OverallDiscount.IsNegative() || req.ExtraCharge.IsNegative() || req.AmountPaid.IsNegative() {
		return nil, nil, apperrors.NewAppError(400, "discount, extra charge and amount paid cannot be negative", apperrors.ErrValidation)
	}

	customer, err := s.partyRepo.FindPartyByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewAppError(400, "unknown customer", err)
		}
		return nil, nil, err
	}
	if customer.Kind != domain.PartyCustomer {
		return nil, nil, apperrors.NewAppError(400, "party is not a customer", apperrors.ErrValidation)
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewAppError(400, "invoice references unknown products", err)
		}
		return nil, nil, err
	}
	productsByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productsByID[p.ProductID] = p
	}

	items := make([]domain.InvoiceItem, len(req.Items))
	lineInputs := make([]pricing.LineItem, len(req.Items))
	stockDeltas := make(map[string]int64, len(req.Items))
	for i, itemReq := range req.Items {
		if err := validateLineRequest(itemReq.UnitPrice, itemReq.Quantity, itemReq.DiscountPercent, itemReq.TaxPercent); err != nil {
			return nil, nil, err
		}

		input := pricing.LineItem{
			UnitPrice:       itemReq.UnitPrice,
			Quantity:        itemReq.Quantity,
			DiscountPercent: itemReq.DiscountPercent,
			TaxPercent:      itemReq.TaxPercent,
		}
		amounts := pricing.CalculateLine(input)

		items[i] = domain.InvoiceItem{
			InvoiceItemID:       uuid.NewString(),
			InvoiceID:           invoiceID,
			ProductID:           itemReq.ProductID,
			ProductName:         productsByID[itemReq.ProductID].Name,
			UnitPrice:           itemReq.UnitPrice,
			Quantity:            itemReq.Quantity,
			DiscountPercent:     itemReq.DiscountPercent,
			TaxPercent:          itemReq.TaxPercent,
			SellingPricePerUnit: amounts.SellingPricePerUnit,
			LineTotal:           amounts.LineTotal,
		}
		lineInputs[i] = input
		stockDeltas[itemReq.ProductID] -= itemReq.Quantity
	}

	discountType := req.OverallDiscountType
	if discountType == "" {
		discountType = pricing.DiscountPercentage
	}

	summary := pricing.Summarize(lineInputs, req.OverallDiscount, discountType, req.ExtraCharge)
	balance, status := pricing.DerivePaymentState(summary.GrandTotal, req.AmountPaid)

	now := time.Now()
	if createdAt.IsZero() {
		createdAt = now
	}
	invoice := domain.Invoice{
		InvoiceID:           invoiceID,
		InvoiceNumber:       req.InvoiceNumber,
		CustomerID:          req.CustomerID,
		InvoiceDate:         req.InvoiceDate,
		Items:               items,
		OverallDiscount:     req.OverallDiscount,
		OverallDiscountType: discountType,
		ExtraCharge:         req.ExtraCharge,
		SubTotal:            summary.SubTotal,
		DiscountAmount:      summary.DiscountAmount,
		GrandTotal:          summary.GrandTotal,
		AmountPaid:          req.AmountPaid,
		Balance:             balance,
		PaymentStatus:       status,
		AuditFields: domain.AuditFields{
			CreatedAt:     createdAt,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}
	return &invoice, stockDeltas, nil
}
