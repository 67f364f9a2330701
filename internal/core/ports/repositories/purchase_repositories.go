package repositories

import (
	"context"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
)

// ListPurchasesParams narrows a purchase bill listing.
type ListPurchasesParams struct {
	VendorID  string // Optional: restrict to one vendor
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken string
}

// PurchaseReader defines read operations for purchase bills
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase bill with its items.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves a page of purchase bills, newest first.
	ListPurchases(ctx context.Context, params ListPurchasesParams) ([]domain.Purchase, string, error)

	// ListPurchasesByVendor retrieves every bill for one vendor in
	// chronological order, for ledger reconciliation.
	ListPurchasesByVendor(ctx context.Context, vendorID string) ([]domain.Purchase, error)
}

// PurchaseWriter defines write operations for purchase bills
type PurchaseWriter interface {
	// SavePurchase persists a bill with its items and applies the given
	// stock deltas (productID -> signed qty) atomically.
	SavePurchase(ctx context.Context, purchase domain.Purchase, stockDeltas map[string]int64) error

	// ReplacePurchase supersedes a saved bill with a full new document,
	// applying the net stock deltas in the same transaction.
	ReplacePurchase(ctx context.Context, purchase domain.Purchase, stockDeltas map[string]int64) error

	// UpdatePaymentState updates the paid amount and settlement status.
	UpdatePaymentState(ctx context.Context, purchase domain.Purchase) error

	// DeletePurchase removes a bill and its items, reversing stock.
	DeletePurchase(ctx context.Context, purchaseID string, stockDeltas map[string]int64) error
}

// PurchaseRepositoryFacade combines all purchase-related repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// PurchaseRepositoryWithTx extends PurchaseRepositoryFacade with transaction capabilities
type PurchaseRepositoryWithTx interface {
	PurchaseRepositoryFacade
	TransactionManager
}
