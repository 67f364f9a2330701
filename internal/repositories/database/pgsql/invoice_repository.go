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

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for sales documents.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const selectInvoiceFields = `
	invoice_id, invoice_number, customer_id, invoice_date,
	overall_discount, overall_discount_type, extra_charge,
	sub_total, discount_amount, grand_total, amount_paid, payment_status,
	created_at, created_by, last_updated_at, last_updated_by
`

const selectInvoiceItemFields = `
	invoice_item_id, invoice_id, product_id, product_name,
	unit_price, quantity, discount_percent, tax_percent,
	selling_price_per_unit, line_total
`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID, &m.InvoiceNumber, &m.CustomerID, &m.InvoiceDate,
		&m.OverallDiscount, &m.OverallDiscountType, &m.ExtraCharge,
		&m.SubTotal, &m.DiscountAmount, &m.GrandTotal, &m.AmountPaid, &m.PaymentStatus,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func scanInvoiceItem(row pgx.Row) (models.InvoiceItem, error) {
	var m models.InvoiceItem
	err := row.Scan(
		&m.InvoiceItemID, &m.InvoiceID, &m.ProductID, &m.ProductName,
		&m.UnitPrice, &m.Quantity, &m.DiscountPercent, &m.TaxPercent,
		&m.SellingPricePerUnit, &m.LineTotal,
	)
	return m, err
}

func insertInvoiceTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (` + selectInvoiceFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.CustomerID, m.InvoiceDate,
		m.OverallDiscount, m.OverallDiscountType, m.ExtraCharge,
		m.SubTotal, m.DiscountAmount, m.GrandTotal, m.AmountPaid, m.PaymentStatus,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, m.InvoiceNumber)
		}
		return fmt.Errorf("failed to insert invoice %s: %w", m.InvoiceID, err)
	}
	return insertInvoiceItemsTx(ctx, tx, invoice.Items)
}

func insertInvoiceItemsTx(ctx context.Context, tx pgx.Tx, items []domain.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (` + selectInvoiceItemFields + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, item := range items {
		m := mapping.ToModelInvoiceItem(item)
		_, err := tx.Exec(ctx, query,
			m.InvoiceItemID, m.InvoiceID, m.ProductID, m.ProductName,
			m.UnitPrice, m.Quantity, m.DiscountPercent, m.TaxPercent,
			m.SellingPricePerUnit, m.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("failed to insert invoice item %s: %w", m.InvoiceItemID, err)
		}
	}
	return nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice, stockDeltas map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertInvoiceTx(ctx, tx, invoice); err != nil {
		return err
	}
	if err := applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + selectInvoiceFields + ` FROM invoices WHERE invoice_id = $1;`

	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	items, err := r.findInvoiceItems(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	invoice := mapping.ToDomainInvoice(m, items)
	return &invoice, nil
}

func (r *PgxInvoiceRepository) findInvoiceItems(ctx context.Context, invoiceID string) ([]models.InvoiceItem, error) {
	query := `
		SELECT ` + selectInvoiceItemFields + ` FROM invoice_items
		WHERE invoice_id = $1 ORDER BY invoice_item_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		item, err := scanInvoiceItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading invoice item rows: %w", err)
	}
	return items, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, params portsrepo.ListInvoicesParams) ([]domain.Invoice, string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + selectInvoiceFields + ` FROM invoices WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if params.CustomerID != "" {
		query += fmt.Sprintf(` AND customer_id = $%d`, argPos)
		args = append(args, params.CustomerID)
		argPos++
	}
	if params.From != nil {
		query += fmt.Sprintf(` AND invoice_date >= $%d`, argPos)
		args = append(args, *params.From)
		argPos++
	}
	if params.To != nil {
		query += fmt.Sprintf(` AND invoice_date <= $%d`, argPos)
		args = append(args, *params.To)
		argPos++
	}
	if params.NextToken != "" {
		docDate, createdAt, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(` AND (invoice_date, created_at) < ($%d, $%d)`, argPos, argPos+1)
		args = append(args, docDate, createdAt)
		argPos += 2
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY invoice_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var ms []models.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan invoice row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("failed reading invoice rows: %w", err)
	}

	newNextToken := ""
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		newNextToken = pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
	}

	// Listing responses carry only document headers, not items.
	invoices := make([]domain.Invoice, 0, len(ms))
	for _, m := range ms {
		invoices = append(invoices, mapping.ToDomainInvoice(m, nil))
	}
	return invoices, newNextToken, nil
}

func (r *PgxInvoiceRepository) ListInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + selectInvoiceFields + ` FROM invoices
		WHERE customer_id = $1 ORDER BY invoice_date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading invoice rows: %w", err)
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) ReplaceInvoice(ctx context.Context, invoice domain.Invoice, stockDeltas map[string]int64) error {
	m := mapping.ToModelInvoice(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE invoices SET
			invoice_number = $2, customer_id = $3, invoice_date = $4,
			overall_discount = $5, overall_discount_type = $6, extra_charge = $7,
			sub_total = $8, discount_amount = $9, grand_total = $10,
			amount_paid = $11, payment_status = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		m.InvoiceID, m.InvoiceNumber, m.CustomerID, m.InvoiceDate,
		m.OverallDiscount, m.OverallDiscountType, m.ExtraCharge,
		m.SubTotal, m.DiscountAmount, m.GrandTotal,
		m.AmountPaid, m.PaymentStatus,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to replace invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, m.InvoiceID); err != nil {
		return fmt.Errorf("failed to clear items for invoice %s: %w", m.InvoiceID, err)
	}
	if err := insertInvoiceItemsTx(ctx, tx, invoice.Items); err != nil {
		return err
	}
	if err := applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxInvoiceRepository) UpdatePaymentState(ctx context.Context, invoice domain.Invoice) error {
	m := mapping.ToModelInvoice(invoice)

	query := `
		UPDATE invoices SET
			amount_paid = $2, payment_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.InvoiceID, m.AmountPaid, m.PaymentStatus, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment state for invoice %s: %w", m.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, invoiceID string, stockDeltas map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id = $1;`, invoiceID); err != nil {
		return fmt.Errorf("failed to delete items for invoice %s: %w", invoiceID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE invoice_id = $1;`, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyStockDeltas(ctx, tx, stockDeltas); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
