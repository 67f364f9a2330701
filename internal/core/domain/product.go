package domain

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
)

// Product is a catalog entry with its two stored prices: what the customer
// is charged (selling) and what the merchant pays (purchase). Each price
// carries its own GST rate and inclusive/exclusive mode.
type Product struct {
	ProductID string `json:"productID"` // Primary Key (UUID)
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Barcode   string `json:"barcode,omitempty"`
	StockQty  int64  `json:"stockQty"`

	Selling  pricing.PriceSpec `json:"selling"`
	Purchase pricing.PriceSpec `json:"purchase"`

	IsActive bool `json:"isActive"`
	AuditFields
}
