package utils

import (
	"github.com/shopspring/decimal"
)

// Display precisions for amounts and percentages.
const (
	MoneyPrecision   = 2
	PercentPrecision = 2
)

// RoundMoney rounds an amount for display.
// Example: 162.9452941 returns 162.95
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// RoundPercent rounds a 0-100 percentage for display.
func RoundPercent(pct decimal.Decimal) decimal.Decimal {
	return pct.Round(PercentPrecision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney formats an amount with two decimals, e.g. "8.50".
func FormatMoney(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, MoneyPrecision)
}
