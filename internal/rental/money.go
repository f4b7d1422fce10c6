package rental

import "github.com/shopspring/decimal"

// Currency is the symbol printed in front of every amount.
const Currency = "Rs"

// FormatAmount renders an amount the way confirmations and reports print it.
func FormatAmount(amount decimal.Decimal) string {
	return Currency + " " + amount.StringFixed(2)
}
