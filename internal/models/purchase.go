package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem is the persistence shape of one purchase bill row.
type PurchaseItem struct {
	PurchaseItemID string `json:"purchaseItemID"`
	PurchaseID     string `json:"purchaseID"`
	ProductID      string `json:"productID"`
	ProductName    string `json:"productName"`

	UnitCost        decimal.Decimal `json:"unitCost"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`

	CostPerUnit decimal.Decimal `json:"costPerUnit"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Purchase is the persistence shape of a saved purchase bill. PaymentStatus
// may be empty on rows written by older clients; mapping backfills it.
type Purchase struct {
	PurchaseID   string    `json:"purchaseID"`
	BillNumber   string    `json:"billNumber"`
	VendorID     string    `json:"vendorID"`
	PurchaseDate time.Time `json:"purchaseDate"`

	OverallDiscount     decimal.Decimal `json:"overallDiscount"`
	OverallDiscountType string          `json:"overallDiscountType"`
	ExtraCharge         decimal.Decimal `json:"extraCharge"`

	SubTotal       decimal.Decimal `json:"subTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`

	AmountPaid    decimal.Decimal `json:"amountPaid"`
	PaymentStatus string          `json:"paymentStatus"`

	AuditFields
}
