package services

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
)

// ProductReaderSvc defines read operations for the catalog
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by id.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a page of products and the token for the next page.
	ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error)
}

// ProductWriterSvc defines write operations for the catalog
type ProductWriterSvc interface {
	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)

	// DeactivateProduct removes a product from sale without deleting history.
	DeactivateProduct(ctx context.Context, productID string, updaterUserID string) error
}

// ProductTaxMigratorSvc re-rates stored selling prices for a batch of products.
type ProductTaxMigratorSvc interface {
	// BulkUpdateTax applies the new tax rate/mode to every selected product
	// under the requested preservation strategy and persists the batch
	// atomically. The whole batch is rejected upfront on an empty selection
	// or a missing/invalid rate.
	BulkUpdateTax(ctx context.Context, req dto.BulkTaxUpdateRequest, updaterUserID string) ([]domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
	ProductTaxMigratorSvc
}
