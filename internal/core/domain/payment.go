package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDirection records which way money moved.
type PaymentDirection string

const (
	// PaymentReceived is money collected from a customer.
	PaymentReceived PaymentDirection = "RECEIVED"
	// PaymentMade is money paid out to a vendor.
	PaymentMade PaymentDirection = "PAID"
)

// Payment is a manual ledger entry recorded against a customer or vendor
// outside of any single document, e.g. a dues settlement.
type Payment struct {
	PaymentID   string           `json:"paymentID"` // Primary Key (UUID)
	PartyKind   PartyKind        `json:"partyKind"`
	PartyID     string           `json:"partyID"` // FK -> Party
	Amount      decimal.Decimal  `json:"amount"`  // Positive value
	Direction   PaymentDirection `json:"direction"`
	Note        string           `json:"note,omitempty"`
	PaymentDate time.Time        `json:"paymentDate"`
	AuditFields
}
