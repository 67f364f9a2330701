package models

import "github.com/shopspring/decimal"

// Product is the persistence shape of a catalog entry. The two price specs
// are flattened into amount/rate/mode column triples.
type Product struct {
	ProductID string `json:"productID"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Barcode   string `json:"barcode"`
	StockQty  int64  `json:"stockQty"`

	SellingPrice        decimal.Decimal `json:"sellingPrice"`
	SellingPriceTaxRate decimal.Decimal `json:"sellingPriceTaxRate"`
	SellingPriceTaxMode string          `json:"sellingPriceTaxMode"`

	PurchasePrice        decimal.Decimal `json:"purchasePrice"`
	PurchasePriceTaxRate decimal.Decimal `json:"purchasePriceTaxRate"`
	PurchasePriceTaxMode string          `json:"purchasePriceTaxMode"`

	IsActive bool `json:"isActive"`
	AuditFields
}
