package api

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a numeric revenue as a display currency string,
// e.g. 1234567.5 -> "$1,234,567.50". Formatting lives at the API boundary;
// the reporting reductions stay numeric.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(s, ".", 2)
	whole, frac := parts[0], parts[1]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return fmt.Sprintf("-$%s.%s", b.String(), frac)
	}
	return fmt.Sprintf("$%s.%s", b.String(), frac)
}
