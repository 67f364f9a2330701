package dto

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse is one chronological line of a party statement.
type LedgerEntryResponse struct {
	Date      time.Time              `json:"date"`
	Kind      domain.LedgerEntryKind `json:"kind"`
	RefID     string                 `json:"refID"`
	RefNumber string                 `json:"refNumber"`
	Debit     decimal.Decimal        `json:"debit"`
	Credit    decimal.Decimal        `json:"credit"`
	Balance   decimal.Decimal        `json:"balance"`
}

// LedgerStatementResponse defines the full reconciliation returned for a party.
type LedgerStatementResponse struct {
	PartyID       string                `json:"partyID"`
	PartyKind     domain.PartyKind      `json:"partyKind"`
	PartyName     string                `json:"partyName"`
	Entries       []LedgerEntryResponse `json:"entries"`
	TotalInvoiced decimal.Decimal       `json:"totalInvoiced"`
	TotalPaid     decimal.Decimal       `json:"totalPaid"`
	ClosingDues   decimal.Decimal       `json:"closingDues"`

	// ClosingDuesDisplay is the dues rounded to currency precision, ready to
	// render on the statement without client-side decimal handling.
	ClosingDuesDisplay string `json:"closingDuesDisplay"`
}

// ToLedgerStatementResponse converts a domain.LedgerStatement to its DTO
func ToLedgerStatementResponse(s *domain.LedgerStatement) LedgerStatementResponse {
	entries := make([]LedgerEntryResponse, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = LedgerEntryResponse{
			Date:      e.Date,
			Kind:      e.Kind,
			RefID:     e.RefID,
			RefNumber: e.RefNumber,
			Debit:     e.Debit,
			Credit:    e.Credit,
			Balance:   e.Balance,
		}
	}
	return LedgerStatementResponse{
		PartyID:            s.PartyID,
		PartyKind:          s.PartyKind,
		PartyName:          s.PartyName,
		Entries:            entries,
		TotalInvoiced:      s.TotalInvoiced,
		TotalPaid:          s.TotalPaid,
		ClosingDues:        s.ClosingDues,
		ClosingDuesDisplay: utils.FormatMoney(s.ClosingDues),
	}
}
