package mapping

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. Frozen
// amounts cross the persistence boundary rounded to 2 places.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		CustomerID:    d.CustomerID,
		InvoiceDate:   d.InvoiceDate,

		OverallDiscount:     d.OverallDiscount,
		OverallDiscountType: string(d.OverallDiscountType),
		ExtraCharge:         d.ExtraCharge.Round(moneyScale),

		SubTotal:       d.SubTotal.Round(moneyScale),
		DiscountAmount: d.DiscountAmount.Round(moneyScale),
		GrandTotal:     d.GrandTotal.Round(moneyScale),

		AmountPaid:    d.AmountPaid.Round(moneyScale),
		PaymentStatus: string(d.PaymentStatus),

		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelInvoiceItem converts one domain InvoiceItem to its model shape.
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		InvoiceItemID: d.InvoiceItemID,
		InvoiceID:     d.InvoiceID,
		ProductID:     d.ProductID,
		ProductName:   d.ProductName,

		UnitPrice:       d.UnitPrice,
		Quantity:        d.Quantity,
		DiscountPercent: d.DiscountPercent,
		TaxPercent:      d.TaxPercent,

		SellingPricePerUnit: d.SellingPricePerUnit.Round(moneyScale),
		LineTotal:           d.LineTotal.Round(moneyScale),
	}
}

// ToDomainInvoice converts a model Invoice plus its items to a domain
// Invoice. Records written by older clients may lack a payment status; it is
// backfilled here from the frozen totals so the calculation layers never
// have to branch on the field being present.
func ToDomainInvoice(m models.Invoice, items []models.InvoiceItem) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		InvoiceDate:   m.InvoiceDate,

		OverallDiscount:     m.OverallDiscount,
		OverallDiscountType: pricing.DiscountType(m.OverallDiscountType),
		ExtraCharge:         m.ExtraCharge,

		SubTotal:       m.SubTotal,
		DiscountAmount: m.DiscountAmount,
		GrandTotal:     m.GrandTotal,

		AmountPaid: m.AmountPaid,

		AuditFields: ToDomainAuditFields(m.AuditFields),
	}

	d.Items = make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		d.Items[i] = domain.InvoiceItem{
			InvoiceItemID: item.InvoiceItemID,
			InvoiceID:     item.InvoiceID,
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,

			UnitPrice:       item.UnitPrice,
			Quantity:        item.Quantity,
			DiscountPercent: item.DiscountPercent,
			TaxPercent:      item.TaxPercent,

			SellingPricePerUnit: item.SellingPricePerUnit,
			LineTotal:           item.LineTotal,
		}
	}

	balance, status := pricing.DerivePaymentState(d.GrandTotal, d.AmountPaid)
	d.Balance = balance
	if m.PaymentStatus != "" {
		d.PaymentStatus = pricing.PaymentStatus(m.PaymentStatus)
	} else {
		d.PaymentStatus = status
	}

	return d
}
