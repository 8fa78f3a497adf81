package report

import (
	"strconv"
	"strings"
)

// formatMoney renders a currency figure with thousands separators for
// the fixed-text parts of the report, e.g. formatMoney(1234.5, 0) is
// "$1,235". Cell-level rounding elsewhere is done by number formats;
// aggregation always runs at full precision.
func formatMoney(v float64, decimals int) string {
	return "$" + groupThousands(strconv.FormatFloat(v, 'f', decimals, 64))
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	return groupThousands(strconv.Itoa(n))
}

// groupThousands inserts comma separators into the integer part of a
// formatted number, preserving sign and decimals.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
