/*
format.go - Currency string formatting

PURPOSE:
  Exports and on-screen summaries show amounts as literal currency strings:
  two decimal places, thousands separators, peso sign. The engine owns the
  formatting so every consumer prints identical figures.
*/
package wage

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal with two decimal places and thousands
// separators: 12345.675 -> "12,345.68".
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatPeso renders an amount with the peso sign: "₱12,345.67".
func FormatPeso(d decimal.Decimal) string {
	return "₱" + FormatAmount(d)
}
