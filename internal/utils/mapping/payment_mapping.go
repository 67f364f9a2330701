package mapping

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		PartyKind:   string(d.PartyKind),
		PartyID:     d.PartyID,
		Amount:      d.Amount.Round(moneyScale),
		Direction:   string(d.Direction),
		Note:        d.Note,
		PaymentDate: d.PaymentDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		PartyKind:   domain.PartyKind(m.PartyKind),
		PartyID:     m.PartyID,
		Amount:      m.Amount,
		Direction:   domain.PaymentDirection(m.Direction),
		Note:        m.Note,
		PaymentDate: m.PaymentDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPayments converts a slice of model Payments
func ToDomainPayments(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
