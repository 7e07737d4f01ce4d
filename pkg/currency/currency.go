// Package currency renders rupiah amounts for console and PDF output.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Zero is the canonical rendering of a null or zero amount.
const Zero = "Rp 0"

type magnitude struct {
	threshold decimal.Decimal
	suffix    string
	places    int32
	format    string
}

// Ordem decrescente: a primeira faixa aplicável vence
var magnitudes = []magnitude{
	{threshold: decimal.New(1, 12), suffix: "T", places: 2, format: "%.2f"},
	{threshold: decimal.New(1, 9), suffix: "M", places: 2, format: "%.2f"},
	{threshold: decimal.New(1, 6), suffix: "Jt", places: 1, format: "%.1f"},
}

var printer = message.NewPrinter(language.English)

// Format renders amount in full ("Rp 1,500,000") or, when abbreviate is set
// and the amount reaches a million, in trillions (T), billions (M) or
// millions (Jt).
func Format(amount decimal.NullDecimal, abbreviate bool) string {
	if !amount.Valid {
		return Zero
	}
	return FormatDecimal(amount.Decimal, abbreviate)
}

// FormatDecimal is Format for a non-null amount.
func FormatDecimal(v decimal.Decimal, abbreviate bool) string {
	if v.IsZero() {
		return Zero
	}
	if abbreviate {
		abs := v.Abs()
		for _, m := range magnitudes {
			if abs.GreaterThanOrEqual(m.threshold) {
				// Arredonda no decimal antes de passar ao printer
				scaled := v.Div(m.threshold).Round(m.places).InexactFloat64()
				return "Rp " + printer.Sprintf(m.format, scaled) + " " + m.suffix
			}
		}
	}
	return "Rp " + printer.Sprintf("%d", v.Round(0).IntPart())
}

// Plain renders amount with thousands separators and no currency prefix.
func Plain(v decimal.Decimal) string {
	return printer.Sprintf("%d", v.Round(0).IntPart())
}
