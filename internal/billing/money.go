package billing

import (
	"fmt"
	"strings"
)

// FormatAmount renders an amount as a USD currency string with two decimals
// and thousands separators. Stored values keep full precision; rounding
// happens only here, at display time.
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + frac
	if negative {
		out = "-" + out
	}
	return out
}
