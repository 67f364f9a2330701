package services

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
)

// ReportingSvcFacade produces tax decomposition reports over the catalog.
type ReportingSvcFacade interface {
	// TaxRateSummary aggregates the catalog's selling prices per GST rate.
	TaxRateSummary(ctx context.Context) ([]domain.TaxRateSummaryRow, error)

	// ProductTaxBreakdowns decomposes both prices of every catalog item.
	ProductTaxBreakdowns(ctx context.Context) ([]domain.ProductTaxBreakdown, error)
}
