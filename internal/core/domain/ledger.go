package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryKind says what produced a ledger line.
type LedgerEntryKind string

const (
	// LedgerDocument lines come from saved invoices or purchase bills.
	LedgerDocument LedgerEntryKind = "DOCUMENT"
	// LedgerPayment lines come from manual payments.
	LedgerPayment LedgerEntryKind = "PAYMENT"
)

// LedgerEntry is one chronological line of a party's ledger with the running
// balance after it. Documents debit the ledger, payments credit it.
type LedgerEntry struct {
	Date      time.Time       `json:"date"`
	Kind      LedgerEntryKind `json:"kind"`
	RefID     string          `json:"refID"`     // Invoice/Purchase/Payment id
	RefNumber string          `json:"refNumber"` // Doc number or payment note
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Balance   decimal.Decimal `json:"balance"` // Running balance after this entry
}

// LedgerStatement is a party's full reconciliation: all documents and
// payments folded into running balances and a closing dues figure.
type LedgerStatement struct {
	PartyID       string          `json:"partyID"`
	PartyKind     PartyKind       `json:"partyKind"`
	PartyName     string          `json:"partyName"`
	Entries       []LedgerEntry   `json:"entries"`
	TotalInvoiced decimal.Decimal `json:"totalInvoiced"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	ClosingDues   decimal.Decimal `json:"closingDues"`
}
