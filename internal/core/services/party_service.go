package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/apperrors"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/dto"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/middleware"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type partyService struct {
	partyRepo    portsrepo.PartyRepositoryFacade
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	paymentRepo  portsrepo.PaymentRepositoryFacade
}

// NewPartyService creates a new instance of partyService.
func NewPartyService(
	partyRepo portsrepo.PartyRepositoryFacade,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	paymentRepo portsrepo.PaymentRepositoryFacade,
) portssvc.PartySvcFacade {
	return &partyService{
		partyRepo:    partyRepo,
		invoiceRepo:  invoiceRepo,
		purchaseRepo: purchaseRepo,
		paymentRepo:  paymentRepo,
	}
}

func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find party by ID in repository", slog.String("error", err.Error()), slog.String("party_id", partyID))
		}
		return nil, err
	}
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind) ([]domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	parties, err := s.partyRepo.ListParties(ctx, kind)
	if err != nil {
		logger.Error("Failed to list parties from repository", slog.String("error", err.Error()), slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	if parties == nil {
		parties = []domain.Party{}
	}
	return parties, nil
}

func (s *partyService) CreateParty(ctx context.Context, kind domain.PartyKind, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	party := domain.Party{
		PartyID: uuid.NewString(),
		Kind:    kind,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		GSTIN:   req.GSTIN,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		logger.Error("Failed to save party in repository", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, err
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(kind)))
	return &party, nil
}

func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.GSTIN != nil {
		party.GSTIN = *req.GSTIN
	}
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party in repository", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, err
	}

	logger.Info("Party updated", slog.String("party_id", partyID))
	return party, nil
}

func (s *partyService) DeleteParty(ctx context.Context, partyID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete party in repository", slog.String("error", err.Error()), slog.String("party_id", partyID))
		}
		return err
	}
	logger.Info("Party deleted", slog.String("party_id", partyID))
	return nil
}

// RecordPayment records a manual payment against the party. The direction
// follows the party's kind: money is received from customers and paid to
// vendors.
func (s *partyService) RecordPayment(ctx context.Context, partyID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "payment amount must be positive", apperrors.ErrValidation)
	}

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	direction := domain.PaymentReceived
	if party.Kind == domain.PartyVendor {
		direction = domain.PaymentMade
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		PartyKind:   party.Kind,
		PartyID:     partyID,
		Amount:      req.Amount,
		Direction:   direction,
		Note:        req.Note,
		PaymentDate: req.PaymentDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment in repository", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, err
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("party_id", partyID),
		slog.String("amount", req.Amount.String()))
	return &payment, nil
}

// GetLedger folds the party's documents and manual payments into one
// chronological statement. Documents debit the ledger for their grand total,
// payments (whether recorded on a document or standalone) credit it; the
// running balance after the last entry is the party's closing dues.
func (s *partyService) GetLedger(ctx context.Context, partyID string) (*domain.LedgerStatement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	var entries []domain.LedgerEntry
	switch party.Kind {
	case domain.PartyCustomer:
		invoices, err := s.invoiceRepo.ListInvoicesByCustomer(ctx, partyID)
		if err != nil {
			logger.Error("Failed to list invoices for ledger", slog.String("error", err.Error()), slog.String("party_id", partyID))
			return nil, fmt.Errorf("failed to list invoices for ledger: %w", err)
		}
		for _, inv := range invoices {
			entries = append(entries, domain.LedgerEntry{
				Date:      inv.InvoiceDate,
				Kind:      domain.LedgerDocument,
				RefID:     inv.InvoiceID,
				RefNumber: inv.InvoiceNumber,
				Debit:     inv.GrandTotal,
			})
			if inv.AmountPaid.IsPositive() {
				entries = append(entries, domain.LedgerEntry{
					Date:      inv.InvoiceDate,
					Kind:      domain.LedgerPayment,
					RefID:     inv.InvoiceID,
					RefNumber: inv.InvoiceNumber,
					Credit:    inv.AmountPaid,
				})
			}
		}
	case domain.PartyVendor:
		purchases, err := s.purchaseRepo.ListPurchasesByVendor(ctx, partyID)
		if err != nil {
			logger.Error("Failed to list purchases for ledger", slog.String("error", err.Error()), slog.String("party_id", partyID))
			return nil, fmt.Errorf("failed to list purchases for ledger: %w", err)
		}
		for _, p := range purchases {
			entries = append(entries, domain.LedgerEntry{
				Date:      p.PurchaseDate,
				Kind:      domain.LedgerDocument,
				RefID:     p.PurchaseID,
				RefNumber: p.BillNumber,
				Debit:     p.GrandTotal,
			})
			if p.AmountPaid.IsPositive() {
				entries = append(entries, domain.LedgerEntry{
					Date:      p.PurchaseDate,
					Kind:      domain.LedgerPayment,
					RefID:     p.PurchaseID,
					RefNumber: p.BillNumber,
					Credit:    p.AmountPaid,
				})
			}
		}
	default:
		return nil, apperrors.NewAppError(400, "unknown party kind", apperrors.ErrValidation)
	}

	payments, err := s.paymentRepo.ListPaymentsByParty(ctx, partyID)
	if err != nil {
		logger.Error("Failed to list payments for ledger", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to list payments for ledger: %w", err)
	}
	for _, pay := range payments {
		entries = append(entries, domain.LedgerEntry{
			Date:      pay.PaymentDate,
			Kind:      domain.LedgerPayment,
			RefID:     pay.PaymentID,
			RefNumber: pay.Note,
			Credit:    pay.Amount,
		})
	}

	// Chronological order; documents before payments on the same instant so
	// a same-day settlement never drives the running balance negative.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Kind == domain.LedgerDocument && entries[j].Kind == domain.LedgerPayment
		}
		return entries[i].Date.Before(entries[j].Date)
	})

	totalInvoiced := decimal.Zero
	totalPaid := decimal.Zero
	balance := decimal.Zero
	for i := range entries {
		totalInvoiced = totalInvoiced.Add(entries[i].Debit)
		totalPaid = totalPaid.Add(entries[i].Credit)
		balance = balance.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].Balance = balance
	}

	return &domain.LedgerStatement{
		PartyID:       party.PartyID,
		PartyKind:     party.Kind,
		PartyName:     party.Name,
		Entries:       entries,
		TotalInvoiced: totalInvoiced,
		TotalPaid:     totalPaid,
		ClosingDues:   balance,
	}, nil
}
