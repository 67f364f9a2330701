package pricing_test

import (
	"testing"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name      string
		spec      pricing.PriceSpec
		wantBase  string
		wantTax   string
		wantFinal string
	}{
		{
			name:      "inclusive 118 at 18 percent",
			spec:      pricing.PriceSpec{Amount: dec("118"), RatePercent: dec("18"), Mode: pricing.TaxInclusive},
			wantBase:  "100",
			wantTax:   "18",
			wantFinal: "118",
		},
		{
			name:      "exclusive 100 at 18 percent",
			spec:      pricing.PriceSpec{Amount: dec("100"), RatePercent: dec("18"), Mode: pricing.TaxExclusive},
			wantBase:  "100",
			wantTax:   "18",
			wantFinal: "118",
		},
		{
			name:      "zero rate inclusive",
			spec:      pricing.PriceSpec{Amount: dec("250"), RatePercent: dec("0"), Mode: pricing.TaxInclusive},
			wantBase:  "250",
			wantTax:   "0",
			wantFinal: "250",
		},
		{
			name:      "zero rate exclusive",
			spec:      pricing.PriceSpec{Amount: dec("250"), RatePercent: dec("0"), Mode: pricing.TaxExclusive},
			wantBase:  "250",
			wantTax:   "0",
			wantFinal: "250",
		},
		{
			name:      "zero amount",
			spec:      pricing.PriceSpec{Amount: dec("0"), RatePercent: dec("28"), Mode: pricing.TaxInclusive},
			wantBase:  "0",
			wantTax:   "0",
			wantFinal: "0",
		},
		{
			name:      "inclusive 105 at 5 percent",
			spec:      pricing.PriceSpec{Amount: dec("105"), RatePercent: dec("5"), Mode: pricing.TaxInclusive},
			wantBase:  "100",
			wantTax:   "5",
			wantFinal: "105",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := pricing.Decompose(tt.spec)
			assert.True(t, parts.Base.Equal(dec(tt.wantBase)), "base: got %s", parts.Base)
			assert.True(t, parts.Tax.Equal(dec(tt.wantTax)), "tax: got %s", parts.Tax)
			assert.True(t, parts.Final.Equal(dec(tt.wantFinal)), "final: got %s", parts.Final)
		})
	}
}

// The stored amount must round-trip exactly: an inclusive amount is the final
// price, an exclusive amount is the base price.
func TestDecompose_RoundTrip(t *testing.T) {
	amounts := []string{"0", "0.01", "1", "99.99", "118", "12345.6789"}
	rates := []string{"0", "5", "12", "18", "28", "99.9", "100"}

	for _, a := range amounts {
		for _, r := range rates {
			incl := pricing.Decompose(pricing.PriceSpec{Amount: dec(a), RatePercent: dec(r), Mode: pricing.TaxInclusive})
			assert.True(t, incl.Final.Equal(dec(a)), "inclusive final drifted for amount=%s rate=%s", a, r)

			excl := pricing.Decompose(pricing.PriceSpec{Amount: dec(a), RatePercent: dec(r), Mode: pricing.TaxExclusive})
			assert.True(t, excl.Base.Equal(dec(a)), "exclusive base drifted for amount=%s rate=%s", a, r)
		}
	}
}

func TestDecompose_TaxNonNegativeAndOrdering(t *testing.T) {
	amounts := []string{"0.01", "1", "118", "5000"}
	rates := []string{"0", "5", "12", "18", "28"}
	modes := []pricing.TaxMode{pricing.TaxInclusive, pricing.TaxExclusive}

	for _, a := range amounts {
		for _, r := range rates {
			for _, m := range modes {
				parts := pricing.Decompose(pricing.PriceSpec{Amount: dec(a), RatePercent: dec(r), Mode: m})

				require.False(t, parts.Tax.IsNegative(), "tax negative for amount=%s rate=%s mode=%s", a, r, m)
				assert.True(t, parts.Base.LessThanOrEqual(parts.Final), "base > final for amount=%s rate=%s mode=%s", a, r, m)

				if dec(r).IsZero() {
					assert.True(t, parts.Tax.IsZero(), "zero rate must yield zero tax")
				} else {
					assert.True(t, parts.Tax.IsPositive(), "nonzero rate on %s must yield positive tax", a)
				}
			}
		}
	}
}

// Base + tax must always reassemble into the final price; the split never
// leaks value.
func TestDecompose_PartsSumToFinal(t *testing.T) {
	specs := []pricing.PriceSpec{
		{Amount: dec("118"), RatePercent: dec("18"), Mode: pricing.TaxInclusive},
		{Amount: dec("92.1875"), RatePercent: dec("28"), Mode: pricing.TaxExclusive},
		{Amount: dec("33.33"), RatePercent: dec("12"), Mode: pricing.TaxInclusive},
	}
	for _, spec := range specs {
		parts := pricing.Decompose(spec)
		assert.True(t, parts.Base.Add(parts.Tax).Equal(parts.Final), "parts do not sum for %+v", spec)
	}
}
