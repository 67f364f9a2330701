package dto

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records a manual payment against a party's ledger.
// The direction is derived from the party's kind, not accepted from the client.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Note        string          `json:"note"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
}

// PaymentResponse defines the data returned for a manual payment.
type PaymentResponse struct {
	PaymentID   string                  `json:"paymentID"`
	PartyID     string                  `json:"partyID"`
	PartyKind   domain.PartyKind        `json:"partyKind"`
	Amount      decimal.Decimal         `json:"amount"`
	Direction   domain.PaymentDirection `json:"direction"`
	Note        string                  `json:"note,omitempty"`
	PaymentDate time.Time               `json:"paymentDate"`
	CreatedAt   time.Time               `json:"createdAt"`
	CreatedBy   string                  `json:"createdBy"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		PartyID:     p.PartyID,
		PartyKind:   p.PartyKind,
		Amount:      p.Amount,
		Direction:   p.Direction,
		Note:        p.Note,
		PaymentDate: p.PaymentDate,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}
