package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persistence shape of a manual ledger payment.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	PartyKind   string          `json:"partyKind"`
	PartyID     string          `json:"partyID"`
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"`
	Note        string          `json:"note"`
	PaymentDate time.Time       `json:"paymentDate"`
	AuditFields
}
