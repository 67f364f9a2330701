package dto

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// PriceSpecRequest carries one stored price: the amount, its GST rate and
// whether the amount already includes that tax.
type PriceSpecRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	Mode        pricing.TaxMode `json:"mode" binding:"required,oneof=INCLUSIVE EXCLUSIVE"`
}

// ToPriceSpec converts the request shape into the pricing package's input.
func (r PriceSpecRequest) ToPriceSpec() pricing.PriceSpec {
	return pricing.PriceSpec{
		Amount:      r.Amount,
		RatePercent: r.RatePercent,
		Mode:        r.Mode,
	}
}

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	SKU      string           `json:"sku" binding:"required"`
	Name     string           `json:"name" binding:"required"`
	Category string           `json:"category"`
	Barcode  string           `json:"barcode"`
	StockQty int64            `json:"stockQty" binding:"gte=0"`
	Selling  PriceSpecRequest `json:"selling" binding:"required"`
	Purchase PriceSpecRequest `json:"purchase" binding:"required"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name     *string           `json:"name"`
	Category *string           `json:"category"`
	Barcode  *string           `json:"barcode"`
	StockQty *int64            `json:"stockQty"`
	Selling  *PriceSpecRequest `json:"selling"`
	Purchase *PriceSpecRequest `json:"purchase"`
	IsActive *bool             `json:"isActive"`
}

// BulkTaxUpdateRequest selects a batch of products and the new selling-price
// tax treatment to migrate them to.
type BulkTaxUpdateRequest struct {
	ProductIDs     []string         `json:"productIDs" binding:"required,min=1"`
	NewRatePercent *decimal.Decimal `json:"newRatePercent" binding:"required"`
	NewMode        pricing.TaxMode  `json:"newMode" binding:"required,oneof=INCLUSIVE EXCLUSIVE"`
	Strategy       pricing.Strategy `json:"strategy" binding:"required,oneof=PRESERVE_FINAL PRESERVE_BASE"`
}

// PriceSpecResponse mirrors a stored price with its decomposition attached.
type PriceSpecResponse struct {
	Amount      decimal.Decimal `json:"amount"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	Mode        pricing.TaxMode `json:"mode"`
	Base        decimal.Decimal `json:"base"`
	Tax         decimal.Decimal `json:"tax"`
	Final       decimal.Decimal `json:"final"`
}

// ProductResponse defines the data returned for a catalog item.
type ProductResponse struct {
	ProductID     string            `json:"productID"`
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	Barcode       string            `json:"barcode,omitempty"`
	StockQty      int64             `json:"stockQty"`
	Selling       PriceSpecResponse `json:"selling"`
	Purchase      PriceSpecResponse `json:"purchase"`
	IsActive      bool              `json:"isActive"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken string            `json:"nextToken,omitempty"`
}

func toPriceSpecResponse(spec pricing.PriceSpec) PriceSpecResponse {
	parts := pricing.Decompose(spec)
	return PriceSpecResponse{
		Amount:      spec.Amount,
		RatePercent: spec.RatePercent,
		Mode:        spec.Mode,
		Base:        parts.Base,
		Tax:         parts.Tax,
		Final:       parts.Final,
	}
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		Barcode:       p.Barcode,
		StockQty:      p.StockQty,
		Selling:       toPriceSpecResponse(p.Selling),
		Purchase:      toPriceSpecResponse(p.Purchase),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductsResponse converts a page of domain.Product to the list DTO
func ToListProductsResponse(products []domain.Product, nextToken string) ListProductsResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: res, NextToken: nextToken}
}
