package pricing_test

import (
	"testing"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epsilon = decimal.New(1, -6)

func assertWithinEpsilon(t *testing.T, want, got decimal.Decimal, msg string, args ...any) {
	t.Helper()
	diff := want.Sub(got).Abs()
	require.Truef(t, diff.LessThanOrEqual(epsilon), msg+": want %s, got %s", append(args, want, got)...)
}

func TestMigrate_PreserveFinal_ToExclusive(t *testing.T) {
	// Inclusive 118 @18% moved to exclusive 28%: the shelf price stays 118,
	// so the stored base becomes 118/1.28 = 92.1875.
	old := pricing.PriceSpec{Amount: dec("118"), RatePercent: dec("18"), Mode: pricing.TaxInclusive}
	target := pricing.TaxTarget{RatePercent: dec("28"), Mode: pricing.TaxExclusive}

	got := pricing.Migrate(old, target, pricing.PreserveFinalPrice)

	assert.True(t, got.Amount.Equal(dec("92.1875")), "stored amount: got %s", got.Amount)
	assert.Equal(t, pricing.TaxExclusive, got.Mode)
	assert.True(t, got.RatePercent.Equal(dec("28")))
	// Rounded only at the persistence boundary.
	assert.Equal(t, "92.19", got.Amount.Round(2).StringFixed(2))
}

func TestMigrate_PreserveFinal_ToInclusive(t *testing.T) {
	// The inclusive amount is already the final price; only the split moves.
	old := pricing.PriceSpec{Amount: dec("100"), RatePercent: dec("18"), Mode: pricing.TaxExclusive}
	target := pricing.TaxTarget{RatePercent: dec("5"), Mode: pricing.TaxInclusive}

	got := pricing.Migrate(old, target, pricing.PreserveFinalPrice)

	assert.True(t, got.Amount.Equal(dec("118")), "stored amount: got %s", got.Amount)
	assert.Equal(t, pricing.TaxInclusive, got.Mode)
}

func TestMigrate_PreserveBase_ToExclusive(t *testing.T) {
	// Exclusive to exclusive with only a rate change is a true no-op on the
	// stored amount; just the tax split changes.
	old := pricing.PriceSpec{Amount: dec("100"), RatePercent: dec("18"), Mode: pricing.TaxExclusive}
	target := pricing.TaxTarget{RatePercent: dec("28"), Mode: pricing.TaxExclusive}

	got := pricing.Migrate(old, target, pricing.PreserveBasePrice)

	assert.True(t, got.Amount.Equal(dec("100")))
	assert.True(t, got.RatePercent.Equal(dec("28")))
}

func TestMigrate_PreserveBase_InclusiveToInclusive(t *testing.T) {
	// Inclusive 118 @18% has base 100; re-rated inclusive at 28% the stored
	// amount becomes 100 * 1.28 = 128.
	old := pricing.PriceSpec{Amount: dec("118"), RatePercent: dec("18"), Mode: pricing.TaxInclusive}
	target := pricing.TaxTarget{RatePercent: dec("28"), Mode: pricing.TaxInclusive}

	got := pricing.Migrate(old, target, pricing.PreserveBasePrice)

	assert.True(t, got.Amount.Equal(dec("128")), "stored amount: got %s", got.Amount)
	assertWithinEpsilon(t, dec("100"), pricing.Decompose(got).Base, "base after migration")
}

func migrationGrid() ([]pricing.PriceSpec, []pricing.TaxTarget) {
	specs := []pricing.PriceSpec{
		{Amount: dec("118"), RatePercent: dec("18"), Mode: pricing.TaxInclusive},
		{Amount: dec("100"), RatePercent: dec("18"), Mode: pricing.TaxExclusive},
		{Amount: dec("92.1875"), RatePercent: dec("28"), Mode: pricing.TaxExclusive},
		{Amount: dec("250"), RatePercent: dec("0"), Mode: pricing.TaxInclusive},
		{Amount: dec("33.33"), RatePercent: dec("12"), Mode: pricing.TaxInclusive},
	}
	targets := []pricing.TaxTarget{
		{RatePercent: dec("0"), Mode: pricing.TaxInclusive},
		{RatePercent: dec("5"), Mode: pricing.TaxExclusive},
		{RatePercent: dec("12"), Mode: pricing.TaxInclusive},
		{RatePercent: dec("18"), Mode: pricing.TaxExclusive},
		{RatePercent: dec("28"), Mode: pricing.TaxInclusive},
	}
	return specs, targets
}

// PreserveFinalPrice must hold the customer price fixed across every
// old/new mode combination.
func TestMigrate_PreserveFinalInvariant(t *testing.T) {
	specs, targets := migrationGrid()
	for _, old := range specs {
		for _, target := range targets {
			got := pricing.Migrate(old, target, pricing.PreserveFinalPrice)
			assertWithinEpsilon(t,
				pricing.Decompose(old).Final,
				pricing.Decompose(got).Final,
				"final drifted migrating %+v to %+v", old, target)
		}
	}
}

// PreserveBasePrice must hold the merchant's net receipt fixed across every
// old/new mode combination.
func TestMigrate_PreserveBaseInvariant(t *testing.T) {
	specs, targets := migrationGrid()
	for _, old := range specs {
		for _, target := range targets {
			got := pricing.Migrate(old, target, pricing.PreserveBasePrice)
			assertWithinEpsilon(t,
				pricing.Decompose(old).Base,
				pricing.Decompose(got).Base,
				"base drifted migrating %+v to %+v", old, target)
		}
	}
}

// Re-running the migration from the same original spec is deterministic.
func TestMigrate_SameInputSameOutput(t *testing.T) {
	old := pricing.PriceSpec{Amount: dec("118"), RatePercent: dec("18"), Mode: pricing.TaxInclusive}
	target := pricing.TaxTarget{RatePercent: dec("28"), Mode: pricing.TaxExclusive}

	first := pricing.Migrate(old, target, pricing.PreserveFinalPrice)
	second := pricing.Migrate(old, target, pricing.PreserveFinalPrice)

	assert.True(t, first.Amount.Equal(second.Amount))
	assert.Equal(t, first.Mode, second.Mode)
}

func TestMigrateAll(t *testing.T) {
	specs := []pricing.PriceSpec{
		{Amount: dec("118"), RatePercent: dec("18"), Mode: pricing.TaxInclusive},
		{Amount: dec("100"), RatePercent: dec("18"), Mode: pricing.TaxExclusive},
	}
	target := pricing.TaxTarget{RatePercent: dec("28"), Mode: pricing.TaxExclusive}

	got := pricing.MigrateAll(specs, target, pricing.PreserveFinalPrice)

	require.Len(t, got, 2)
	assert.True(t, got[0].Amount.Equal(dec("92.1875")))
	assertWithinEpsilon(t, dec("118"), pricing.Decompose(got[1]).Final, "second product final")

	assert.Empty(t, pricing.MigrateAll(nil, target, pricing.PreserveFinalPrice))
}
