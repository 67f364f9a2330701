package repositories

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
)

// PaymentReader defines read operations for manual ledger payments
type PaymentReader interface {
	// FindPaymentByID retrieves a payment by its id.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByParty retrieves all payments for a party in
	// chronological order.
	ListPaymentsByParty(ctx context.Context, partyID string) ([]domain.Payment, error)
}

// PaymentWriter defines write operations for manual ledger payments
type PaymentWriter interface {
	// SavePayment persists a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment record.
	DeletePayment(ctx context.Context, paymentID string) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
