package pricing

import "github.com/shopspring/decimal"

// Strategy selects which side of a price is held fixed when a product is
// moved to a new tax rate or mode.
type Strategy string

const (
	// PreserveFinalPrice keeps the customer-facing price unchanged; the
	// merchant absorbs the margin delta.
	PreserveFinalPrice Strategy = "PRESERVE_FINAL"
	// PreserveBasePrice keeps the merchant's net receipt unchanged; the
	// customer absorbs the delta.
	PreserveBasePrice Strategy = "PRESERVE_BASE"
)

// TaxTarget is the rate and mode a price is being migrated to.
type TaxTarget struct {
	RatePercent decimal.Decimal `json:"ratePercent"`
	Mode        TaxMode         `json:"mode"`
}

// Migrate recomputes a stored price under a new tax target so that the
// chosen side of the old price is preserved.
//
// PreserveFinalPrice: the old final price carries over. If the new mode is
// inclusive the stored amount is already the final price and is kept as-is;
// if exclusive, the new stored base is oldFinal / (1 + newRate/100).
//
// PreserveBasePrice: the old base carries over. If the new mode is exclusive
// the stored amount is the base and is kept as-is; if inclusive, the new
// stored amount is oldBase * (1 + newRate/100).
//
// The transform is one-shot: it always reads "old" from its input, so
// re-applying it to its own output under a different rate redefines what is
// being preserved.
func Migrate(spec PriceSpec, target TaxTarget, strategy Strategy) PriceSpec {
	parts := Decompose(spec)
	rateFactor := one.Add(target.RatePercent.Div(hundred))

	out := PriceSpec{RatePercent: target.RatePercent, Mode: target.Mode}

	if strategy == PreserveFinalPrice {
		if target.Mode == TaxInclusive {
			out.Amount = parts.Final
		} else {
			out.Amount = parts.Final.Div(rateFactor)
		}
		return out
	}

	if target.Mode == TaxExclusive {
		out.Amount = parts.Base
	} else {
		out.Amount = parts.Base.Mul(rateFactor)
	}
	return out
}

// MigrateAll applies Migrate to each spec independently and returns the new
// specs in input order. There is no partial result: the function is total
// over its domain, so the batch either runs in full or the caller rejects it
// upfront (missing rate, empty selection).
func MigrateAll(specs []PriceSpec, target TaxTarget, strategy Strategy) []PriceSpec {
	out := make([]PriceSpec, len(specs))
	for i, spec := range specs {
		out[i] = Migrate(spec, target, strategy)
	}
	return out
}
