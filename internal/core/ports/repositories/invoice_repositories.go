package repositories

import (
	"context"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
)

// ListInvoicesParams narrows an invoice listing.
type ListInvoicesParams struct {
	CustomerID string // Optional: restrict to one customer
	From       *time.Time
	To         *time.Time
	Limit      int
	NextToken  string
}

// InvoiceReader defines read operations for sales documents
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices, newest first.
	ListInvoices(ctx context.Context, params ListInvoicesParams) ([]domain.Invoice, string, error)

	// ListInvoicesByCustomer retrieves every invoice for one customer in
	// chronological order, for ledger reconciliation.
	ListInvoicesByCustomer(ctx context.Context, customerID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for sales documents
type InvoiceWriter interface {
	// SaveInvoice persists an invoice with its items and applies the given
	// stock deltas (productID -> signed qty) atomically.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, stockDeltas map[string]int64) error

	// ReplaceInvoice supersedes a saved invoice with a full new document,
	// applying the net stock deltas in the same transaction.
	ReplaceInvoice(ctx context.Context, invoice domain.Invoice, stockDeltas map[string]int64) error

	// UpdatePaymentState updates the paid amount and settlement status.
	UpdatePaymentState(ctx context.Context, invoice domain.Invoice) error

	// DeleteInvoice removes an invoice and its items, restoring stock.
	DeleteInvoice(ctx context.Context, invoiceID string, stockDeltas map[string]int64) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
