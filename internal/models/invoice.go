package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is the persistence shape of one invoice row. All derived
// amounts are stored rounded to 2 places, matching what was shown to the
// user when the document was frozen.
type InvoiceItem struct {
	InvoiceItemID string `json:"invoiceItemID"`
	InvoiceID     string `json:"invoiceID"`
	ProductID     string `json:"productID"`
	ProductName   string `json:"productName"`

	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`

	SellingPricePerUnit decimal.Decimal `json:"sellingPricePerUnit"`
	LineTotal           decimal.Decimal `json:"lineTotal"`
}

// Invoice is the persistence shape of a saved sales document.
// PaymentStatus may be empty on rows written by older clients; mapping
// backfills it from GrandTotal/AmountPaid at load time.
type Invoice struct {
	InvoiceID     string    `json:"invoiceID"`
	InvoiceNumber string    `json:"invoiceNumber"`
	CustomerID    string    `json:"customerID"`
	InvoiceDate   time.Time `json:"invoiceDate"`

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
