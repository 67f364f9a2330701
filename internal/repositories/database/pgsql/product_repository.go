package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/models"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/utils/mapping"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const selectProductFields = `
	product_id, sku, name, category, barcode, stock_qty,
	selling_price, selling_price_tax_rate, selling_price_tax_mode,
	purchase_price, purchase_price_tax_rate, purchase_price_tax_mode,
	is_active, created_at, created_by, last_updated_at, last_updated_by
`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID, &m.SKU, &m.Name, &m.Category, &m.Barcode, &m.StockQty,
		&m.SellingPrice, &m.SellingPriceTaxRate, &m.SellingPriceTaxMode,
		&m.PurchasePrice, &m.PurchasePriceTaxRate, &m.PurchasePriceTaxMode,
		&m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + selectProductFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.SKU, m.Name, m.Category, m.Barcode, m.StockQty,
		m.SellingPrice, m.SellingPriceTaxRate, m.SellingPriceTaxMode,
		m.PurchasePrice, m.PurchasePriceTaxRate, m.PurchasePriceTaxMode,
		m.IsActive, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: product with SKU %s already exists", apperrors.ErrDuplicate, m.SKU)
		}
		return fmt.Errorf("failed to save product %s: %w", m.ProductID, err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + selectProductFields + ` FROM products WHERE product_id = $1;`

	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	product := mapping.ToDomainProduct(m)
	return &product, nil
}

// FindProductsByIDs retrieves the given products, preserving input order.
// If any id is unknown the whole lookup fails with ErrNotFound.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return []domain.Product{}, nil
	}

	query := `SELECT ` + selectProductFields + ` FROM products WHERE product_id = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by ids: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		found[m.ProductID] = mapping.ToDomainProduct(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading product rows: %w", err)
	}

	result := make([]domain.Product, 0, len(productIDs))
	for _, id := range productIDs {
		p, ok := found[id]
		if !ok {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, id)
		}
		result = append(result, p)
	}
	return result, nil
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + selectProductFields + ` FROM products`
	args := []interface{}{}
	if nextToken != "" {
		createdAt, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` WHERE created_at < $1`
		args = append(args, createdAt)
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed reading product rows: %w", err)
	}

	newNextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		newNextToken = pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
	}
	return mapping.ToDomainProducts(ms), newNextToken, nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	query := `
		UPDATE products SET
			name = $2, category = $3, barcode = $4, stock_qty = $5,
			selling_price = $6, selling_price_tax_rate = $7, selling_price_tax_mode = $8,
			purchase_price = $9, purchase_price_tax_rate = $10, purchase_price_tax_mode = $11,
			is_active = $12, last_updated_at = $13, last_updated_by = $14
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProductID, m.Name, m.Category, m.Barcode, m.StockQty,
		m.SellingPrice, m.SellingPriceTaxRate, m.SellingPriceTaxMode,
		m.PurchasePrice, m.PurchasePriceTaxRate, m.PurchasePriceTaxMode,
		m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", m.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateProductPricing persists new selling price specs for a batch of
// products inside one transaction; no row changes unless all do.
func (r *PgxProductRepository) UpdateProductPricing(ctx context.Context, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE products SET
			selling_price = $2, selling_price_tax_rate = $3, selling_price_tax_mode = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE product_id = $1;
	`
	for _, product := range products {
		m := mapping.ToModelProduct(product)
		tag, err := tx.Exec(ctx, query,
			m.ProductID, m.SellingPrice, m.SellingPriceTaxRate, m.SellingPriceTaxMode,
			m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update pricing for product %s: %w", m.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, m.ProductID)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxProductRepository) DeactivateProduct(ctx context.Context, productID string, updatedBy string) error {
	query := `
		UPDATE products SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
		WHERE product_id = $1 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, productID, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// applyStockDeltas adjusts stock levels inside an open transaction. Deltas
// are signed quantities keyed by product id.
func applyStockDeltas(ctx context.Context, tx pgx.Tx, stockDeltas map[string]int64) error {
	query := `
		UPDATE products SET stock_qty = stock_qty + $2, last_updated_at = NOW()
		WHERE product_id = $1;
	`
	for productID, delta := range stockDeltas {
		if delta == 0 {
			continue
		}
		tag, err := tx.Exec(ctx, query, productID, delta)
		if err != nil {
			return fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
	}
	return nil
}
