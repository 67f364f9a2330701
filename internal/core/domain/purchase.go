package domain

import (
	"time"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
)

// PurchaseItem is one frozen row of a purchase bill. UnitCost plays the role
// UnitPrice plays on sales lines; the arithmetic is identical.
type PurchaseItem struct {
	PurchaseItemID string `json:"purchaseItemID"` // Primary Key (UUID)
	PurchaseID     string `json:"purchaseID"`     // FK -> Purchase
	ProductID      string `json:"productID"`      // FK -> Product
	ProductName    string `json:"productName"`    // Name snapshot at bill time

	UnitCost        decimal.Decimal `json:"unitCost"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`

	CostPerUnit decimal.Decimal `json:"costPerUnit"` // Derived, frozen
	LineTotal   decimal.Decimal `json:"lineTotal"`   // Derived, frozen
}

// PricingInput converts the item's raw fields back into the pricing
// package's input shape.
func (i PurchaseItem) PricingInput() pricing.LineItem {
	return pricing.LineItem{
		UnitPrice:       i.UnitCost,
		Quantity:        i.Quantity,
		DiscountPercent: i.DiscountPercent,
		TaxPercent:      i.TaxPercent,
	}
}

// Purchase is a saved purchase bill against a vendor, frozen at save time
// exactly like an Invoice.
type Purchase struct {
	PurchaseID   string    `json:"purchaseID"` // Primary Key (UUID)
	BillNumber   string    `json:"billNumber"`
	VendorID     string    `json:"vendorID"` // FK -> Party (kind VENDOR)
	PurchaseDate time.Time `json:"purchaseDate"`

	Items []PurchaseItem `json:"items"`

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
