package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"roadcost/core/types"
)

// money formats a monetary value as $1,234,567.89
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// categoryTitle renders a category label for display: "traffic_control"
// becomes "Traffic Control".
func categoryTitle(c types.Category) string {
	words := strings.Split(c.String(), "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// formatQty renders a quantity: whole numbers without decimals,
// fractional values with two places.
func formatQty(d decimal.Decimal) string {
	f := d.InexactFloat64()
	if f == math.Trunc(f) {
		return fmt.Sprintf("%.0f", f)
	}
	return fmt.Sprintf("%.2f", f)
}
