package pricing_test

import (
	"testing"

	"github.com/ThotaSridharRao/Ecom-sub000/internal/core/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLine(t *testing.T) {
	tests := []struct {
		name      string
		item      pricing.LineItem
		wantSell  string
		wantTotal string
	}{
		{
			name:      "discounted taxed multi-qty line",
			item:      pricing.LineItem{UnitPrice: dec("1000"), Quantity: 2, DiscountPercent: dec("10"), TaxPercent: dec("18")},
			wantSell:  "900",
			wantTotal: "2124", // 900 * 1.18 * 2
		},
		{
			name:      "no discount no tax",
			item:      pricing.LineItem{UnitPrice: dec("49.50"), Quantity: 3, DiscountPercent: dec("0"), TaxPercent: dec("0")},
			wantSell:  "49.50",
			wantTotal: "148.50",
		},
		{
			name:      "full discount",
			item:      pricing.LineItem{UnitPrice: dec("500"), Quantity: 1, DiscountPercent: dec("100"), TaxPercent: dec("18")},
			wantSell:  "0",
			wantTotal: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.CalculateLine(tt.item)
			assert.True(t, got.SellingPricePerUnit.Equal(dec(tt.wantSell)), "sell: got %s", got.SellingPricePerUnit)
			assert.True(t, got.LineTotal.Equal(dec(tt.wantTotal)), "total: got %s", got.LineTotal)
		})
	}
}

func TestCalculateLine_Monotonicity(t *testing.T) {
	base := pricing.LineItem{UnitPrice: dec("750"), Quantity: 1, DiscountPercent: dec("5"), TaxPercent: dec("12")}

	// More quantity, strictly bigger total.
	prev := pricing.CalculateLine(base).LineTotal
	for qty := int64(2); qty <= 10; qty++ {
		item := base
		item.Quantity = qty
		total := pricing.CalculateLine(item).LineTotal
		require.True(t, total.GreaterThan(prev), "qty %d did not increase total", qty)
		prev = total
	}

	// Deeper discount, strictly smaller per-unit price.
	prevSell := pricing.CalculateLine(base).SellingPricePerUnit
	for _, d := range []string{"10", "25", "50", "99", "100"} {
		item := base
		item.DiscountPercent = dec(d)
		sell := pricing.CalculateLine(item).SellingPricePerUnit
		require.True(t, sell.LessThan(prevSell), "discount %s did not decrease selling price", d)
		prevSell = sell
	}
}

func TestSummarize(t *testing.T) {
	// Two lines worth 2124.00 and 500.00.
	items := []pricing.LineItem{
		{UnitPrice: dec("1000"), Quantity: 2, DiscountPercent: dec("10"), TaxPercent: dec("18")},
		{UnitPrice: dec("500"), Quantity: 1, DiscountPercent: dec("0"), TaxPercent: dec("0")},
	}

	summary := pricing.Summarize(items, dec("5"), pricing.DiscountPercentage, dec("50"))

	assert.True(t, summary.SubTotal.Equal(dec("2624")), "subTotal: got %s", summary.SubTotal)
	assert.True(t, summary.DiscountAmount.Equal(dec("131.20")), "discountAmount: got %s", summary.DiscountAmount)
	assert.True(t, summary.GrandTotal.Equal(dec("2542.80")), "grandTotal: got %s", summary.GrandTotal)
}

func TestSummarize_FlatDiscount(t *testing.T) {
	items := []pricing.LineItem{
		{UnitPrice: dec("200"), Quantity: 1, DiscountPercent: dec("0"), TaxPercent: dec("0")},
	}

	summary := pricing.Summarize(items, dec("75"), pricing.DiscountFlat, dec("0"))

	assert.True(t, summary.DiscountAmount.Equal(dec("75")))
	assert.True(t, summary.GrandTotal.Equal(dec("125")))
}

func TestSummarize_EmptyDocument(t *testing.T) {
	summary := pricing.Summarize(nil, dec("10"), pricing.DiscountPercentage, dec("0"))

	assert.True(t, summary.SubTotal.IsZero())
	assert.True(t, summary.DiscountAmount.IsZero())
	assert.True(t, summary.GrandTotal.IsZero())
}

// A discount can never drive the document below the extra charge: the
// discounted subtotal is clamped at zero first.
func TestSummarize_ClampsBeforeExtraCharge(t *testing.T) {
	items := []pricing.LineItem{
		{UnitPrice: dec("100"), Quantity: 1, DiscountPercent: dec("0"), TaxPercent: dec("0")},
	}
	extraCharge := dec("40")

	summary := pricing.Summarize(items, dec("500"), pricing.DiscountFlat, extraCharge)

	assert.True(t, summary.GrandTotal.Equal(extraCharge), "grandTotal: got %s", summary.GrandTotal)
	assert.True(t, summary.GrandTotal.GreaterThanOrEqual(extraCharge))
}

func TestDerivePaymentState(t *testing.T) {
	tests := []struct {
		name       string
		grandTotal string
		amountPaid string
		wantStatus pricing.PaymentStatus
	}{
		{"fully paid", "2542.80", "2542.80", pricing.PaymentPaid},
		{"paid within tolerance", "1000.30", "1000.00", pricing.PaymentPaid},
		{"overpaid", "500", "600", pricing.PaymentPaid},
		{"partially paid", "1000", "400", pricing.PaymentPartial},
		{"nothing paid", "1000", "0", pricing.PaymentPending},
		{"zero value document", "0", "0", pricing.PaymentPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, status := pricing.DerivePaymentState(dec(tt.grandTotal), dec(tt.amountPaid))
			assert.Equal(t, tt.wantStatus, status)
			assert.True(t, balance.Equal(dec(tt.grandTotal).Sub(dec(tt.amountPaid))))
		})
	}
}

func TestDerivePaymentState_ToleranceBoundary(t *testing.T) {
	// Exactly at the tolerance counts as settled; just above does not.
	_, status := pricing.DerivePaymentState(dec("100.50"), dec("100"))
	assert.Equal(t, pricing.PaymentPaid, status)

	_, status = pricing.DerivePaymentState(dec("100.51"), dec("100"))
	assert.Equal(t, pricing.PaymentPartial, status)

	_, status = pricing.DerivePaymentState(decimal.NewFromFloat(100.51), decimal.Zero)
	assert.Equal(t, pricing.PaymentPending, status)
}
