package mapping

import (
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/domain"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/models"
)

// ToModelPurchase converts a domain Purchase to a model Purchase.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:   d.PurchaseID,
		BillNumber:   d.BillNumber,
		VendorID:     d.VendorID,
		PurchaseDate: d.PurchaseDate,

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

// ToModelPurchaseItem converts one domain PurchaseItem to its model shape.
func ToModelPurchaseItem(d domain.PurchaseItem) models.PurchaseItem {
	return models.PurchaseItem{
		PurchaseItemID: d.PurchaseItemID,
		PurchaseID:     d.PurchaseID,
		ProductID:      d.ProductID,
		ProductName:    d.ProductName,

		UnitCost:        d.UnitCost,
		Quantity:        d.Quantity,
		DiscountPercent: d.DiscountPercent,
		TaxPercent:      d.TaxPercent,

		CostPerUnit: d.CostPerUnit.Round(moneyScale),
		LineTotal:   d.LineTotal.Round(moneyScale),
	}
}

// ToDomainPurchase converts a model Purchase plus its items to a domain
// Purchase, backfilling a missing payment status like invoices do.
func ToDomainPurchase(m models.Purchase, items []models.PurchaseItem) domain.Purchase {
	d := domain.Purchase{
		PurchaseID:   m.PurchaseID,
		BillNumber:   m.BillNumber,
		VendorID:     m.VendorID,
		PurchaseDate: m.PurchaseDate,

		OverallDiscount:     m.OverallDiscount,
		OverallDiscountType: pricing.DiscountType(m.OverallDiscountType),
		ExtraCharge:         m.ExtraCharge,

		SubTotal:       m.SubTotal,
		DiscountAmount: m.DiscountAmount,
		GrandTotal:     m.GrandTotal,

		AmountPaid: m.AmountPaid,

		AuditFields: ToDomainAuditFields(m.AuditFields),
	}

	d.Items = make([]domain.PurchaseItem, len(items))
	for i, item := range items {
		d.Items[i] = domain.PurchaseItem{
			PurchaseItemID: item.PurchaseItemID,
			PurchaseID:     item.PurchaseID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,

			UnitCost:        item.UnitCost,
			Quantity:        item.Quantity,
			DiscountPercent: item.DiscountPercent,
			TaxPercent:      item.TaxPercent,

			CostPerUnit: item.CostPerUnit,
			LineTotal:   item.LineTotal,
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
