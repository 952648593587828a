package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatUSD renders an amount as "$1,432,298.73". Negative amounts render as "-$16,072.00".
func FormatUSD(amount float64) string {
	if amount < 0 {
		return printer.Sprintf("-$%.2f", -amount)
	}
	return printer.Sprintf("$%.2f", amount)
}

// FormatDecimalUSD is FormatUSD for decimal amounts.
func FormatDecimalUSD(amount decimal.Decimal) string {
	return FormatUSD(amount.Round(2).InexactFloat64())
}

// FormatCount renders an integer with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}
