// Package pricing implements the tax-aware price arithmetic used across the
// catalog, invoicing and reporting layers: decomposing a stored price into
// its base/tax/final parts, pricing document lines, summarizing documents and
// re-rating stored prices under a new GST rate.
//
// Every function here is pure: no I/O, no hidden state, fresh outputs.
// Amounts are decimal.Decimal and are never rounded inside this package;
// rounding to currency precision happens only at display and persistence
// boundaries.
package pricing

import "github.com/shopspring/decimal"

// TaxMode says whether a stored amount already contains tax.
type TaxMode string

const (
	// TaxInclusive means the stored amount is the final (customer) price.
	TaxInclusive TaxMode = "INCLUSIVE"
	// TaxExclusive means the stored amount is the base (pre-tax) price.
	TaxExclusive TaxMode = "EXCLUSIVE"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// PriceSpec is a stored price together with the information needed to
// interpret it. The rate is always a percentage of the base (tax-exclusive)
// amount, never of the final amount.
type PriceSpec struct {
	Amount      decimal.Decimal `json:"amount"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	Mode        TaxMode         `json:"mode"`
}

// PriceParts is the decomposition of a PriceSpec.
type PriceParts struct {
	Base  decimal.Decimal `json:"base"`
	Tax   decimal.Decimal `json:"tax"`
	Final decimal.Decimal `json:"final"`
}

// Decompose splits a stored price into base, tax and final amounts.
//
// Inclusive: final = amount, base = final / (1 + rate/100), tax = final - base.
// Exclusive: base = amount, tax = base * rate/100, final = base + tax.
//
// A zero rate yields base == final and zero tax in either mode. The divisor
// is strictly positive for any rate >= 0, so there is no division-by-zero
// case to guard.
func Decompose(spec PriceSpec) PriceParts {
	rateFactor := spec.RatePercent.Div(hundred)

	if spec.Mode == TaxInclusive {
		final := spec.Amount
		base := final.Div(one.Add(rateFactor))
		return PriceParts{
			Base:  base,
			Tax:   final.Sub(base),
			Final: final,
		}
	}

	base := spec.Amount
	tax := base.Mul(rateFactor)
	return PriceParts{
		Base:  base,
		Tax:   tax,
		Final: base.Add(tax),
	}
}
