package domain

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// TaxRateSummaryRow aggregates the catalog's selling prices for one GST rate.
type TaxRateSummaryRow struct {
	RatePercent  decimal.Decimal `json:"ratePercent"`
	ProductCount int             `json:"productCount"`
	TotalBase    decimal.Decimal `json:"totalBase"`
	TotalTax     decimal.Decimal `json:"totalTax"`
	TotalFinal   decimal.Decimal `json:"totalFinal"`
}

// ProductTaxBreakdown is one catalog item with both of its prices decomposed.
type ProductTaxBreakdown struct {
	ProductID string             `json:"productID"`
	SKU       string             `json:"sku"`
	Name      string             `json:"name"`
	Selling   pricing.PriceParts `json:"selling"`
	Purchase  pricing.PriceParts `json:"purchase"`
}
