package services

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
)

// PartyReaderSvc defines read operations for customer/vendor records
type PartyReaderSvc interface {
	// GetPartyByID retrieves a party by id.
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties of one kind.
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PartyWriterSvc defines write operations for customer/vendor records
type PartyWriterSvc interface {
	// CreateParty creates a new customer or vendor.
	CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// UpdateParty updates an existing party.
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)

	// DeleteParty removes a party record.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyLedgerSvc reconciles a party's documents and payments.
type PartyLedgerSvc interface {
	// GetLedger folds the party's documents and manual payments into a
	// chronological statement with running balances and closing dues.
	GetLedger(ctx context.Context, partyID string) (*domain.LedgerStatement, error)

	// RecordPayment records a manual payment against the party.
	RecordPayment(ctx context.Context, partyID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error)
}

// PartySvcFacade combines all party-related service interfaces
type PartySvcFacade interface {
	PartyReaderSvc
	PartyWriterSvc
	PartyLedgerSvc
}
