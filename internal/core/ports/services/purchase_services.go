package services

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
)

// PurchaseReaderSvc defines read operations for purchase bills
type PurchaseReaderSvc interface {
	// GetPurchaseByID retrieves a purchase bill with its items.
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error)

	// ListPurchases retrieves a filtered page of purchase bills.
	ListPurchases(ctx context.Context, params portsrepo.ListPurchasesParams) ([]domain.Purchase, string, error)
}

// PurchaseWriterSvc defines write operations for purchase bills
type PurchaseWriterSvc interface {
	// CreatePurchase prices the requested lines, freezes the document
	// summary and payment state, persists the bill and increments stock.
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest, creatorUserID string) (*domain.Purchase, error)

	// ReplacePurchase supersedes a saved bill with a fully recomputed one.
	ReplacePurchase(ctx context.Context, purchaseID string, req dto.CreatePurchaseRequest, updaterUserID string) (*domain.Purchase, error)

	// RecordPayment adds a payment against the bill and re-derives its
	// settlement status.
	RecordPayment(ctx context.Context, purchaseID string, req dto.RecordPaymentRequest, updaterUserID string) (*domain.Purchase, error)

	// DeletePurchase removes a bill, reversing the stock it added.
	DeletePurchase(ctx context.Context, purchaseID string, updaterUserID string) error
}

// PurchaseSvcFacade combines all purchase-related service interfaces
type PurchaseSvcFacade interface {
	PurchaseReaderSvc
	PurchaseWriterSvc
}
