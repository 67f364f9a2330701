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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase bills.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryWithTx {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const selectPurchaseFields = `
	purchase_id, bill_number, vendor_id, purchase_date,
	overall_discount, overall_discount_type, extra_charge,
	sub_total, discount_amount, grand_total, amount_paid, payment_status,
	created_at, created_by, last_updated_at, last_updated_by
`

const selectPurchaseItemFields = `
	purchase_item_id, purchase_id, product_id, product_name,
	unit_cost, quantity, discount_percent, tax_percent,
	cost_per_unit, line_total
`

func scanPurchase(row pgx.Row) (models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID, &m.BillNumber, &m.VendorID, &m.PurchaseDate,
		&m.OverallDiscount, &m.OverallDiscountType, &m.ExtraCharge,
		&m.SubTotal, &m.DiscountAmount, &m.GrandTotal, &m.AmountPaid, &m.PaymentStatus,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanPurchaseItem(row pgx.Row) (models.PurchaseItem, error) {
	var m models.PurchaseItem
	err := row.Scan(
		&m.PurchaseItemID, &m.PurchaseID, &m.ProductID, &m.ProductName,
		&m.UnitCost, &m.Quantity, &m.DiscountPercent, &m.TaxPercent,
		&m.CostPerUnit, &m.LineTotal,
	)
	return m, err
}

func insertPurchaseTx(ctx context.Context, tx pgx.Tx, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	query := `
		INSERT INTO purchases (` + selectPurchaseFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.PurchaseID, m.BillNumber, m.VendorID, m.PurchaseDate,
		m.OverallDiscount, m.OverallDiscountType, m.ExtraCharge,
		m.SubTotal, m.DiscountAmount, m.GrandTotal, m.AmountPaid, m.PaymentStatus,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bill number %s already exists", apperrors.ErrDuplicate, m.BillNumber)
		}
		return fmt.Errorf("failed to insert purchase %s: %w", m.PurchaseID, err)
	}
	return insertPurchaseItemsTx(ctx, tx, purchase.Items)
}

func insertPurchaseItemsTx(ctx context.Context, tx pgx.Tx, items []domain.PurchaseItem) error {
	query := `
		INSERT INTO purchase_items (` + selectPurchaseItemFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, item := range items {
		m := mapping.ToModelPurchaseItem(item)
		_, err := tx.Exec(ctx, query,
			m.PurchaseItemID, m.PurchaseID, m.ProductID, m.ProductName,
			m.UnitCost, m.Quantity, m.DiscountPercent, m.TaxPercent,
			m.CostPerUnit, m.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert purchase item %s: %w", m.PurchaseItemID, err)
		}
	}
	return nil
}

func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase, stockDeltas map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertPurchaseTx(ctx, tx, purchase); err != nil {
		return err
	}
	if err := applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `SELECT ` + selectPurchaseFields + ` FROM purchases WHERE purchase_id = $1;`

	m, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase %s: %w", purchaseID, err)
	}

	items, err := r.findPurchaseItems(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	purchase := mapping.ToDomainPurchase(m, items)
	return &purchase, nil
}

func (r *PgxPurchaseRepository) findPurchaseItems(ctx context.Context, purchaseID string) ([]models.PurchaseItem, error) {
	query := `
		SELECT ` + selectPurchaseItemFields + ` FROM purchase_items
		WHERE purchase_id = $1 ORDER BY purchase_item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for purchase %s: %w", purchaseID, err)
	}
	defer rows.Close()

	var items []models.PurchaseItem
	for rows.Next() {
		item, err := scanPurchaseItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading purchase item rows: %w", err)
	}
	return items, nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, params portsrepo.ListPurchasesParams) ([]domain.Purchase, string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + selectPurchaseFields + ` FROM purchases WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if params.VendorID != "" {
		query += fmt.Sprintf(` AND vendor_id = $%d`, argPos)
		args = append(args, params.VendorID)
		argPos++
	}
	if params.From != nil {
		query += fmt.Sprintf(` AND purchase_date >= $%d`, argPos)
		args = append(args, *params.From)
		argPos++
	}
	if params.To != nil {
		query += fmt.Sprintf(` AND purchase_date <= $%d`, argPos)
		args = append(args, *params.To)
		argPos++
	}
	if params.NextToken != "" {
		docDate, createdAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(` AND (purchase_date, created_at) < ($%d, $%d)`, argPos, argPos+1)
		args = append(args, docDate, createdAt)
		argPos += 2
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY purchase_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var ms []models.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan purchase row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed reading purchase rows: %w", err)
	}

	newNextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		newNextToken = pagination.EncodeToken(last.PurchaseDate, last.CreatedAt)
	}

	// Listing responses carry only document headers, not items.
	purchases := make([]domain.Purchase, 0, len(ms))
	for _, m := range ms {
		purchases = append(purchases, mapping.ToDomainPurchase(m, nil))
	}
	return purchases, newNextToken, nil
}

func (r *PgxPurchaseRepository) ListPurchasesByVendor(ctx context.Context, vendorID string) ([]domain.Purchase, error) {
	query := `
		SELECT ` + selectPurchaseFields + ` FROM purchases
		WHERE vendor_id = $1 ORDER BY purchase_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases for vendor %s: %w", vendorID, err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, mapping.ToDomainPurchase(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading purchase rows: %w", err)
	}
	return purchases, nil
}

func (r *PgxPurchaseRepository) ReplacePurchase(ctx context.Context, purchase domain.Purchase, stockDeltas map[string]int64) error {
	m := mapping.ToModelPurchase(purchase)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE purchases SET
			bill_number = $2, vendor_id = $3, purchase_date = $4,
			overall_discount = $5, overall_discount_type = $6, extra_charge = $7,
			sub_total = $8, discount_amount = $9, grand_total = $10,
			amount_paid = $11, payment_status = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE purchase_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.PurchaseID, m.BillNumber, m.VendorID, m.PurchaseDate,
		m.OverallDiscount, m.OverallDiscountType, m.ExtraCharge,
		m.SubTotal, m.DiscountAmount, m.GrandTotal,
		m.AmountPaid, m.PaymentStatus,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to replace purchase %s: %w", m.PurchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1;`, m.PurchaseID); err != nil {
		return fmt.Errorf("failed to clear items for purchase %s: %w", m.PurchaseID, err)
	}
	if err := insertPurchaseItemsTx(ctx, tx, purchase.Items); err != nil {
		return err
	}
	if err := applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) UpdatePaymentState(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	query := `
		UPDATE purchases SET
			amount_paid = $2, payment_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE purchase_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PurchaseID, m.AmountPaid, m.PaymentStatus, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment state for purchase %s: %w", m.PurchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string, stockDeltas map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM purchase_items WHERE purchase_id = $1;`, purchaseID); err != nil {
		return fmt.Errorf("failed to delete items for purchase %s: %w", purchaseID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
