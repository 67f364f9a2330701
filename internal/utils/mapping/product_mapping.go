package mapping

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/models"
)

// moneyScale is the precision stored amounts are rounded to when a record
// crosses the persistence boundary. Calculation always runs at full
// precision; this is the only place product prices get rounded.
const moneyScale = 2

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID: d.ProductID,
		SKU:       d.SKU,
		Name:      d.Name,
		Category:  d.Category,
		Barcode:   d.Barcode,
		StockQty:  d.StockQty,

		SellingPrice:        d.Selling.Amount.Round(moneyScale),
		SellingPriceTaxRate: d.Selling.RatePercent,
		SellingPriceTaxMode: string(d.Selling.Mode),

		PurchasePrice:        d.Purchase.Amount.Round(moneyScale),
		PurchasePriceTaxRate: d.Purchase.RatePercent,
		PurchasePriceTaxMode: string(d.Purchase.Mode),

		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID: m.ProductID,
		SKU:       m.SKU,
		Name:      m.Name,
		Category:  m.Category,
		Barcode:   m.Barcode,
		StockQty:  m.StockQty,

		Selling: pricing.PriceSpec{
			Amount:      m.SellingPrice,
			RatePercent: m.SellingPriceTaxRate,
			Mode:        normalizeTaxMode(m.SellingPriceTaxMode),
		},
		Purchase: pricing.PriceSpec{
			Amount:      m.PurchasePrice,
			RatePercent: m.PurchasePriceTaxRate,
			Mode:        normalizeTaxMode(m.PurchasePriceTaxMode),
		},

		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// normalizeTaxMode maps stored mode strings onto the pricing enum. Rows
// written by older clients left the mode blank, which always meant
// tax-inclusive pricing.
func normalizeTaxMode(mode string) pricing.TaxMode {
	if mode == string(pricing.TaxExclusive) {
		return pricing.TaxExclusive
	}
	return pricing.TaxInclusive
}

// ToDomainProducts converts a slice of model Products
func ToDomainProducts(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
