package pgsql

import (
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:  newPgxProductRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
		PurchaseRepo: newPgxPurchaseRepository(dbPool),
		PartyRepo:    newPgxPartyRepository(dbPool),
		PaymentRepo:  newPgxPaymentRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
		APITokenRepo: newPgxAPITokenRepository(dbPool),
	}
}
