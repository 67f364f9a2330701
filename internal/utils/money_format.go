package utils

import "github.com/shopspring/decimal"

// FormatMoney renders an amount rounded to 2 places, the precision every
// stored document amount carries.
func FormatMoney(amount decimal.Decimal) string {
	return amount.Round(2).StringFixed(2)
}
