package repositories

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
)

// ProductReader defines read operations for catalog data
type ProductReader interface {
	// FindProductByID retrieves a product by its id.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves the given products, preserving input order.
	// Unknown ids yield apperrors.ErrNotFound.
	FindProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error)

	// ListProducts retrieves a page of products ordered by creation time.
	// nextToken selects the page; an empty returned token means no more pages.
	ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error)
}

// ProductWriter defines write operations for catalog data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// UpdateProductPricing persists new selling price specs for a batch of
	// products in a single transaction; no row is updated unless all are.
	UpdateProductPricing(ctx context.Context, products []domain.Product) error

	// DeactivateProduct soft-removes a product from the catalog.
	DeactivateProduct(ctx context.Context, productID string, updatedBy string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
