package repositories

import (
	"context"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
)

// PartyReader defines read operations for customer/vendor records
type PartyReader interface {
	// FindPartyByID retrieves a party by its id.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)

	// ListParties retrieves all parties of one kind, ordered by name.
	ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error)
}

// PartyWriter defines write operations for customer/vendor records
type PartyWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party record.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyRepositoryFacade combines all party-related repository interfaces
type PartyRepositoryFacade interface {
	PartyReader
	PartyWriter
}

// PartyRepositoryWithTx extends PartyRepositoryFacade with transaction capabilities
type PartyRepositoryWithTx interface {
	PartyRepositoryFacade
	TransactionManager
}
