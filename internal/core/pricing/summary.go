package pricing

import "github.com/shopspring/decimal"

// DiscountType selects how a document-level discount is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFlat       DiscountType = "FLAT"
)

// PaymentStatus is the settlement state of a saved document.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPending PaymentStatus = "PENDING"
)

// paidTolerance absorbs floating-point residue carried in from older records
// when deciding whether a document is fully settled. It is an epsilon, not a
// currency rounding rule.
var paidTolerance = decimal.NewFromFloat(0.5)

// DocumentSummary is the aggregate over a document's line items plus the
// document-level adjustments.
type DocumentSummary struct {
	SubTotal       decimal.Decimal `json:"subTotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	GrandTotal     decimal.Decimal `json:"grandTotal"`
}

// Summarize folds line totals into a document summary.
//
// SubTotal is the sum of all line totals (zero for an empty document). A
// percentage discount applies against SubTotal only; discounts are never
// compounded with the per-line discounts already inside the line totals.
// The discounted subtotal is clamped at zero before the extra charge is
// added, so GrandTotal >= ExtraCharge always holds.
func Summarize(items []LineItem, overallDiscount decimal.Decimal, discountType DiscountType, extraCharge decimal.Decimal) DocumentSummary {
	subTotal := decimal.Zero
	for _, item := range items {
		subTotal = subTotal.Add(CalculateLine(item).LineTotal)
	}

	discountAmount := overallDiscount
	if discountType == DiscountPercentage {
		discountAmount = subTotal.Mul(overallDiscount).Div(hundred)
	}

	discounted := subTotal.Sub(discountAmount)
	if discounted.IsNegative() {
		discounted = decimal.Zero
	}

	return DocumentSummary{
		SubTotal:       subTotal,
		DiscountAmount: discountAmount,
		GrandTotal:     discounted.Add(extraCharge),
	}
}

// DerivePaymentState computes the outstanding balance and settlement status
// for a document given what has been paid against it so far.
func DerivePaymentState(grandTotal, amountPaid decimal.Decimal) (decimal.Decimal, PaymentStatus) {
	balance := grandTotal.Sub(amountPaid)

	switch {
	case balance.LessThanOrEqual(paidTolerance):
		return balance, PaymentPaid
	case amountPaid.IsPositive():
		return balance, PaymentPartial
	default:
		return balance, PaymentPending
	}
}
