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

// maxTaxRate bounds accepted GST rates; shared by every document validator.
var maxTaxRate = decimal.NewFromInt(100)

type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new instance of productService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	selling := req.Selling.ToPriceSpec()
	purchase := req.Purchase.ToPriceSpec()
	if err := validatePriceSpec(selling); err != nil {
		return nil, err
	}
	if err := validatePriceSpec(purchase); err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID: uuid.NewString(),
		SKU:       req.SKU,
		Name:      req.Name,
		Category:  req.Category,
		Barcode:   req.Barcode,
		StockQty:  req.StockQty,
		Selling:   selling,
		Purchase:  purchase,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save product in repository", slog.String("error", err.Error()), slog.String("sku", req.SKU))
		}
		return nil, err
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("sku", product.SKU))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find product by ID in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	products, token, err := s.productRepo.ListProducts(ctx, limit, nextToken)
	if err != nil {
		logger.Error("Failed to list products from repository", slog.String("error", err.Error()), slog.Int("limit", limit))
		return nil, "", fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, token, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.StockQty != nil {
		if *req.StockQty < 0 {
			return nil, apperrors.NewAppError(400, "stock quantity cannot be negative", apperrors.ErrValidation)
		}
		product.StockQty = *req.StockQty
	}
	if req.Selling != nil {
		spec := req.Selling.ToPriceSpec()
		if err := validatePriceSpec(spec); err != nil {
			return nil, err
		}
		product.Selling = spec
	}
	if req.Purchase != nil {
		spec := req.Purchase.ToPriceSpec()
		if err := validatePriceSpec(spec); err != nil {
			return nil, err
		}
		product.Purchase = spec
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, err
	}

	logger.Info("Product updated", slog.String("product_id", productID))
	return product, nil
}

func (s *productService) DeactivateProduct(ctx context.Context, productID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.productRepo.DeactivateProduct(ctx, productID, updaterUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate product in repository", slog.String("error", err.Error()), slog.String("product_id", productID))
		}
		return err
	}
	logger.Info("Product deactivated", slog.String("product_id", productID))
	return nil
}

// BulkUpdateTax re-rates the selling price of every selected product under the
// requested preservation strategy and persists the batch atomically. The
// whole batch is rejected before any work when the selection is empty, the
// rate is missing or out of range, or any selected product does not exist.
func (s *productService) BulkUpdateTax(ctx context.Context, req dto.BulkTaxUpdateRequest, updaterUserID string) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.ProductIDs) == 0 {
		return nil, apperrors.NewAppError(400, "no products selected", apperrors.ErrValidation)
	}
	if req.NewRatePercent == nil {
		return nil, apperrors.NewAppError(400, "new tax rate is required", apperrors.ErrValidation)
	}
	if req.NewRatePercent.IsNegative() || req.NewRatePercent.GreaterThan(maxTaxRate) {
		return nil, apperrors.NewAppError(400, "tax rate must be between 0 and 100", apperrors.ErrValidation)
	}
	switch req.Strategy {
	case pricing.PreserveFinalPrice, pricing.PreserveBasePrice:
	default:
		return nil, apperrors.NewAppError(400, "unknown migration strategy", apperrors.ErrValidation)
	}

	// Every id must resolve before any price is touched.
	products, err := s.productRepo.FindProductsByIDs(ctx, req.ProductIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(400, "selection contains unknown products", err)
		}
		logger.Error("Failed to load products for tax migration", slog.String("error", err.Error()), slog.Int("count", len(req.ProductIDs)))
		return nil, fmt.Errorf("failed to load products for tax migration: %w", err)
	}

	target := pricing.TaxTarget{RatePercent: *req.NewRatePercent, Mode: req.NewMode}
	now := time.Now()
	for i := range products {
		products[i].Selling = pricing.Migrate(products[i].Selling, target, req.Strategy)
		products[i].LastUpdatedAt = now
		products[i].LastUpdatedBy = updaterUserID
	}

	if err := s.productRepo.UpdateProductPricing(ctx, products); err != nil {
		logger.Error("Failed to persist migrated prices", slog.String("error", err.Error()), slog.Int("count", len(products)))
		return nil, fmt.Errorf("failed to persist migrated prices: %w", err)
	}

	logger.Info("Bulk tax update applied",
		slog.Int("count", len(products)),
		slog.String("new_rate", req.NewRatePercent.String()),
		slog.String("strategy", string(req.Strategy)))
	return products, nil
}

// validatePriceSpec rejects negative amounts and rates outside [0, 100].
func validatePriceSpec(spec pricing.PriceSpec) error {
	if spec.Amount.IsNegative() {
		return apperrors.NewAppError(400, "price amount cannot be negative", apperrors.ErrValidation)
	}
	if spec.RatePercent.IsNegative() || spec.RatePercent.GreaterThan(maxTaxRate) {
		return apperrors.NewAppError(400, "tax rate must be between 0 and 100", apperrors.ErrValidation)
	}
	switch spec.Mode {
	case pricing.TaxInclusive, pricing.TaxExclusive:
		return nil
	default:
		return apperrors.NewAppError(400, "unknown tax mode", apperrors.ErrValidation)
	}
}
