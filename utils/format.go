// File: utils/format.go
package utils

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The web client formatted all figures with the id-ID locale; keep that
// grouping on the server so display strings match across clients.
var displayLocale = language.Indonesian

// FormatAmount renders a plain figure with locale digit grouping and no
// fraction digits, e.g. 5000000 -> "5.000.000".
func FormatAmount(amount float64) string {
	p := message.NewPrinter(displayLocale)
	return p.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// FormatMoney renders an amount with its currency symbol, falling back to
// "<amount> <code>" when the code is not a known ISO currency.
func FormatMoney(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return FormatAmount(amount) + " " + code
	}
	p := message.NewPrinter(displayLocale)
	return p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(amount)))
}
