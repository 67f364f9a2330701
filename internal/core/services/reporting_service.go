package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/middleware"
)

// reportCatalogPageSize caps how many products one catalog sweep fetches
// per repository call.
const reportCatalogPageSize = 500

type reportingService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewReportingService creates a new instance of reportingService.
func NewReportingService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{productRepo: productRepo}
}

// TaxRateSummary sweeps the catalog and aggregates every active selling
// price per GST rate, decomposed into base and tax parts.
func (s *reportingService) TaxRateSummary(ctx context.Context) ([]domain.TaxRateSummaryRow, error) {
	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*domain.TaxRateSummaryRow)
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		parts := pricing.Decompose(p.Selling)
		key := p.Selling.RatePercent.String()
		row, ok := buckets[key]
		if !ok {
			row = &domain.TaxRateSummaryRow{RatePercent: p.Selling.RatePercent}
			buckets[key] = row
		}
		row.ProductCount++
		row.TotalBase = row.TotalBase.Add(parts.Base)
		row.TotalTax = row.TotalTax.Add(parts.Tax)
		row.TotalFinal = row.TotalFinal.Add(parts.Final)
	}

	rows := make([]domain.TaxRateSummaryRow, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].RatePercent.LessThan(rows[j].RatePercent)
	})
	return rows, nil
}

// ProductTaxBreakdowns decomposes both stored prices of every active
// catalog item.
func (s *reportingService) ProductTaxBreakdowns(ctx context.Context) ([]domain.ProductTaxBreakdown, error) {
	products, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ProductTaxBreakdown, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		rows = append(rows, domain.ProductTaxBreakdown{
			ProductID: p.ProductID,
			SKU:       p.SKU,
			Name:      p.Name,
			Selling:   pricing.Decompose(p.Selling),
			Purchase:  pricing.Decompose(p.Purchase),
		})
	}
	return rows, nil
}

func (s *reportingService) loadCatalog(ctx context.Context) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var all []domain.Product
	token := ""
	for {
		page, next, err := s.productRepo.ListProducts(ctx, reportCatalogPageSize, token)
		if err != nil {
			logger.Error("Failed to load catalog page for report", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to load catalog for report: %w", err)
		}
		all = append(all, page...)
		if next == "" {
			break
		}
		token = next
	}
	return all, nil
}
