package pricing

import "github.com/shopspring/decimal"

// LineItem is one row of an invoice or purchase bill. UnitPrice is the MRP
// for sales lines and the unit cost for purchase lines; the math is the same.
type LineItem struct {
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Quantity        int64           `json:"quantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	TaxPercent      decimal.Decimal `json:"taxPercent"`
}

// LineAmounts are the derived amounts for a single line.
type LineAmounts struct {
	SellingPricePerUnit decimal.Decimal `json:"sellingPricePerUnit"`
	LineTotal           decimal.Decimal `json:"lineTotal"`
}

// CalculateLine derives the per-unit selling price and the tax-inclusive
// line total for a line item.
//
//	sellingPricePerUnit = unitPrice * (1 - discount/100)
//	lineTotal           = sellingPricePerUnit * (1 + tax/100) * quantity
//
// Callers constrain discount to [0,100]; the selling price is still clamped
// at zero so a discount above 100 can never produce a negative line.
func CalculateLine(item LineItem) LineAmounts {
	sell := item.UnitPrice.Mul(one.Sub(item.DiscountPercent.Div(hundred)))
	if sell.IsNegative() {
		sell = decimal.Zero
	}

	total := sell.
		Mul(one.Add(item.TaxPercent.Div(hundred))).
		Mul(decimal.NewFromInt(item.Quantity))

	return LineAmounts{
		SellingPricePerUnit: sell,
		LineTotal:           total,
	}
}
