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
)

type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	partyRepo    portsrepo.PartyRepositoryFacade
}

// NewPurchaseService creates a new instance of purchaseService.
func NewPurchaseService(
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	partyRepo portsrepo.PartyRepositoryFacade,
) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		partyRepo:    partyRepo,
	}
}

func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find purchase by ID in repository", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		}
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, params portsrepo.ListPurchasesParams) ([]domain.Purchase, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	purchases, token, err := s.purchaseRepo.ListPurchases(ctx, params)
	if err != nil {
		logger.Error("Failed to list purchases from repository", slog.String("error", err.Error()))
		return nil, "", fmt.Errorf("failed to list purchases: %w", err)
	}
	if purchases == nil {
		purchases = []domain.Purchase{}
	}
	return purchases, token, nil
}

// CreatePurchase prices the requested lines, freezes the bill summary and
// settlement state, then persists the bill and its stock increments in one
// transaction.
func (s *purchaseService) CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchase, stockDeltas, err := s.buildPurchase(ctx, uuid.NewString(), req, creatorUserID, creatorUserID, time.Time{})
	if err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.SavePurchase(ctx, *purchase, stockDeltas); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save purchase", slog.String("error", err.Error()), slog.String("bill_number", req.BillNumber))
		}
		return nil, err
	}

	logger.Info("Purchase created",
		slog.String("purchase_id", purchase.PurchaseID),
		slog.String("bill_number", purchase.BillNumber),
		slog.String("grand_total", purchase.GrandTotal.String()))
	return purchase, nil
}

// ReplacePurchase supersedes a saved bill with a fully recomputed document.
// The stock added by the old items is taken back and the new items' additions
// applied, netted per product, in the same transaction.
func (s *purchaseService) ReplacePurchase(ctx context.Context, purchaseID string, req dto.CreatePurchaseRequest, updaterUserID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	purchase, stockDeltas, err := s.buildPurchase(ctx, purchaseID, req, existing.CreatedBy, updaterUserID, existing.CreatedAt)
	if err != nil {
		return nil, err
	}

	// Take back the old additions before applying the new ones.
	for _, item := range existing.Items {
		stockDeltas[item.ProductID] -= item.Quantity
	}

	if err := s.purchaseRepo.ReplacePurchase(ctx, *purchase, stockDeltas); err != nil {
		logger.Error("Failed to replace purchase", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return nil, err
	}

	logger.Info("Purchase replaced", slog.String("purchase_id", purchaseID))
	return purchase, nil
}

// RecordPayment adds a payment amount to the bill and re-derives its
// settlement status. The frozen totals are never touched.
func (s *purchaseService) RecordPayment(ctx context.Context, purchaseID string, req dto.RecordPaymentRequest, updaterUserID string) (*domain.Purchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	purchase.AmountPaid = purchase.AmountPaid.Add(req.Amount)
	purchase.Balance, purchase.PaymentStatus = pricing.DerivePaymentState(purchase.GrandTotal, purchase.AmountPaid)
	purchase.LastUpdatedAt = time.Now()
	purchase.LastUpdatedBy = updaterUserID

	if err := s.purchaseRepo.UpdatePaymentState(ctx, *purchase); err != nil {
		logger.Error("Failed to update purchase payment state", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return nil, err
	}

	logger.Info("Purchase payment recorded",
		slog.String("purchase_id", purchaseID),
		slog.String("amount", req.Amount.String()),
		slog.String("status", string(purchase.PaymentStatus)))
	return purchase, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, purchaseID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return err
	}

	// Deleting a bill reverses the stock it brought in.
	stockDeltas := make(map[string]int64, len(purchase.Items))
	for _, item := range purchase.Items {
		stockDeltas[item.ProductID] -= item.Quantity
	}

	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID, stockDeltas); err != nil {
		logger.Error("Failed to delete purchase", slog.String("error", err.Error()), slog.String("purchase_id", purchaseID))
		return err
	}

	logger.Info("Purchase deleted", slog.String("purchase_id", purchaseID))
	return nil
}

// buildPurchase validates the request, prices every line and freezes the
// bill summary. createdAt is zero for new documents.
func (s *purchaseService) buildPurchase(ctx context.Context, purchaseID string, req dto.CreatePurchaseRequest, creatorUserID, updaterUserID string, createdAt time.Time) (*domain.Purchase, map[string]int64, error) {
	if len(req.Items) == 0 {
		return nil, nil, apperrors.NewAppError(400, "purchase must have at least one item", apperrors.ErrValidation)
	}
	if req.OverallDiscount.IsNegative() || req.ExtraCharge.IsNegative() || req.AmountPaid.IsNegative() {
		return nil, nil, apperrors.NewAppError(400, "discount, extra charge and amount paid cannot be negative", apperrors.ErrValidation)
	}

	vendor, err := s.partyRepo.FindPartyByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewAppError(400, "unknown vendor", err)
		}
		return nil, nil, err
	}
	if vendor.Kind != domain.PartyVendor {
		return nil, nil, apperrors.NewAppError(400, "party is not a vendor", apperrors.ErrValidation)
	}

	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewAppError(400, "purchase references unknown products", err)
		}
		return nil, nil, err
	}
	productsByID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productsByID[p.ProductID] = p
	}

	items := make([]domain.PurchaseItem, len(req.Items))
	lineInputs := make([]pricing.LineItem, len(req.Items))
	stockDeltas := make(map[string]int64, len(req.Items))
	for i, itemReq := range req.Items {
		if err := validateLineRequest(itemReq.UnitCost, itemReq.Quantity, itemReq.DiscountPercent, itemReq.TaxPercent); err != nil {
			return nil, nil, err
		}

		input := pricing.LineItem{
			UnitPrice:       itemReq.UnitCost,
			Quantity:        itemReq.Quantity,
			DiscountPercent: itemReq.DiscountPercent,
			TaxPercent:      itemReq.TaxPercent,
		}
		amounts := pricing.CalculateLine(input)

		items[i] = domain.PurchaseItem{
			PurchaseItemID:  uuid.NewString(),
			PurchaseID:      purchaseID,
			ProductID:       itemReq.ProductID,
			ProductName:     productsByID[itemReq.ProductID].Name,
			UnitCost:        itemReq.UnitCost,
			Quantity:        itemReq.Quantity,
			DiscountPercent: itemReq.DiscountPercent,
			TaxPercent:      itemReq.TaxPercent,
			CostPerUnit:     amounts.SellingPricePerUnit,
			LineTotal:       amounts.LineTotal,
		}
		lineInputs[i] = input
		stockDeltas[itemReq.ProductID] += itemReq.Quantity
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
	purchase := domain.Purchase{
		PurchaseID:          purchaseID,
		BillNumber:          req.BillNumber,
		VendorID:            req.VendorID,
		PurchaseDate:        req.PurchaseDate,
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
	return &purchase, stockDeltas, nil
}
