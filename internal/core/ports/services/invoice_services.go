package services

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
)

// InvoiceReaderSvc defines read operations for sales documents
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its items.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a filtered page of invoices.
	ListInvoices(ctx context.Context, params portsrepo.ListInvoicesParams) ([]domain.Invoice, string, error)
}

// InvoiceWriterSvc defines write operations for sales documents
type InvoiceWriterSvc interface {
	// CreateInvoice prices the requested lines, freezes the document summary
	// and payment state, persists the invoice and decrements stock.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)

	// ReplaceInvoice supersedes a saved invoice with a fully recomputed one.
	ReplaceInvoice(ctx context.Context, invoiceID string, req dto.CreateInvoiceRequest, updaterUserID string) (*domain.Invoice, error)

	// RecordPayment adds a payment against the invoice and re-derives its
	// settlement status.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, updaterUserID string) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice, restoring the stock it consumed.
	DeleteInvoice(ctx context.Context, invoiceID string, updaterUserID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
