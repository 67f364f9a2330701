package domain

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// InvoiceItem is one frozen row of a sales invoice. The derived amounts are
// computed by the pricing package at save time and stored with the document;
// they are never recomputed afterwards.
type InvoiceItem struct {
	InvoiceItemID string `json:"invoiceItemID"` // Primary Key (UUID)
	InvoiceID     string `json:"invoiceID"`     // FK -> Invoice
	ProductID     string `json:"productID"`     // FK -> Product
	ProductName   string `json:"productName"`   // Name snapshot at sale time

	UnitPrice       decimal.Decimal `json:"unitPrice"` // MRP per unit
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`

	SellingPricePerUnit decimal.Decimal `json:"sellingPricePerUnit"` // Derived, frozen
	LineTotal           decimal.Decimal `json:"lineTotal"`           // Derived, frozen
}

// PricingInput converts the item's raw fields back into the pricing
// package's input shape.
func (i InvoiceItem) PricingInput() pricing.LineItem {
	return pricing.LineItem{
		UnitPrice:       i.UnitPrice,
		Quantity:        i.Quantity,
		DiscountPercent: i.DiscountPercent,
		TaxPercent:      i.TaxPercent,
	}
}

// Invoice is a saved sales document. The summary block (SubTotal through
// GrandTotal) is a snapshot frozen at save time; edits replace the whole
// document rather than mutating it.
type Invoice struct {
	InvoiceID     string    `json:"invoiceID"` // Primary Key (UUID)
	InvoiceNumber string    `json:"invoiceNumber"`
	CustomerID    string    `json:"customerID"` // FK -> Party (kind CUSTOMER)
	InvoiceDate   time.Time `json:"invoiceDate"`

	Items []InvoiceItem `json:"items"`

	OverallDiscount     decimal.Decimal      `json:"overallDiscount"`
	OverallDiscountType pricing.DiscountType `json:"overallDiscountType"`
	ExtraCharge         decimal.Decimal      `json:"extraCharge"`

	SubTotal       decimal.Decimal `json:"subTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`

	AmountPaid    decimal.Decimal       `json:"amountPaid"`
	Balance       decimal.Decimal       `json:"balance"`
	PaymentStatus pricing.PaymentStatus `json:"paymentStatus"`

	AuditFields
}
