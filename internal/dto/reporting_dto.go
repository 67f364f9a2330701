package dto

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TaxRateSummaryRowResponse represents one GST rate bucket in the summary report
type TaxRateSummaryRowResponse struct {
	RatePercent  decimal.Decimal `json:"ratePercent"`
	ProductCount int             `json:"productCount"`
	TotalBase    decimal.Decimal `json:"totalBase"`
	TotalTax     decimal.Decimal `json:"totalTax"`
	TotalFinal   decimal.Decimal `json:"totalFinal"`
}

// TaxRateSummaryResponse represents the per-rate tax summary report response
type TaxRateSummaryResponse struct {
	Rows   []TaxRateSummaryRowResponse `json:"rows"`
	Totals struct {
		Base  decimal.Decimal `json:"base"`
		Tax   decimal.Decimal `json:"tax"`
		Final decimal.Decimal `json:"final"`
	} `json:"totals"`
}

// PricePartsResponse is one decomposed price inside a breakdown row.
type PricePartsResponse struct {
	Base  decimal.Decimal `json:"base"`
	Tax   decimal.Decimal `json:"tax"`
	Final decimal.Decimal `json:"final"`
}

// ProductTaxBreakdownResponse is one catalog item with both prices decomposed
type ProductTaxBreakdownResponse struct {
	ProductID string             `json:"productID"`
	SKU       string             `json:"sku"`
	Name      string             `json:"name"`
	Selling   PricePartsResponse `json:"selling"`
	Purchase  PricePartsResponse `json:"purchase"`
}

// ProductTaxBreakdownListResponse wraps the per-product breakdown report.
type ProductTaxBreakdownListResponse struct {
	Products []ProductTaxBreakdownResponse `json:"products"`
}

// ToTaxRateSummaryResponse converts domain summary rows to a DTO response
func ToTaxRateSummaryResponse(rows []domain.TaxRateSummaryRow) TaxRateSummaryResponse {
	response := TaxRateSummaryResponse{
		Rows: make([]TaxRateSummaryRowResponse, len(rows)),
	}

	totalBase := decimal.Zero
	totalTax := decimal.Zero
	totalFinal := decimal.Zero

	for i, row := range rows {
		response.Rows[i] = TaxRateSummaryRowResponse{
			RatePercent:  row.RatePercent,
			ProductCount: row.ProductCount,
			TotalBase:    row.TotalBase,
			TotalTax:     row.TotalTax,
			TotalFinal:   row.TotalFinal,
		}

		totalBase = totalBase.Add(row.TotalBase)
		totalTax = totalTax.Add(row.TotalTax)
		totalFinal = totalFinal.Add(row.TotalFinal)
	}

	response.Totals.Base = totalBase
	response.Totals.Tax = totalTax
	response.Totals.Final = totalFinal

	return response
}

// ToProductTaxBreakdownListResponse converts domain breakdown rows to a DTO response
func ToProductTaxBreakdownListResponse(rows []domain.ProductTaxBreakdown) ProductTaxBreakdownListResponse {
	response := ProductTaxBreakdownListResponse{
		Products: make([]ProductTaxBreakdownResponse, len(rows)),
	}
	for i, row := range rows {
		response.Products[i] = ProductTaxBreakdownResponse{
			ProductID: row.ProductID,
			SKU:       row.SKU,
			Name:      row.Name,
			Selling: PricePartsResponse{
				Base:  row.Selling.Base,
				Tax:   row.Selling.Tax,
				Final: row.Selling.Final,
			},
			Purchase: PricePartsResponse{
				Base:  row.Purchase.Base,
				Tax:   row.Purchase.Tax,
				Final: row.Purchase.Final,
			},
		}
	}
	return response
}
