package vlist

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ----------------------------------------------------------------------------
// canned format helpers for column definitions
// ----------------------------------------------------------------------------

// FormatNumber formats a numeric value with comma separators.
// decimals controls decimal places (0 for integers).
func FormatNumber(v any, decimals int) string {
	s := strconv.FormatFloat(toFloat64(v), 'f', decimals, 64)
	return insertCommas(s)
}

// FormatPercent formats a numeric value as a percentage.
func FormatPercent(v any, decimals int) string {
	return strconv.FormatFloat(toFloat64(v), 'f', decimals, 64) + "%"
}

// insertCommas adds thousand separators to a numeric string.
func insertCommas(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	integer, decimal, hasDecimal := strings.Cut(s, ".")

	n := len(integer)
	if n > 3 {
		var b strings.Builder
		b.Grow(n + n/3)
		start := n % 3
		if start == 0 {
			start = 3
		}
		b.WriteString(integer[:start])
		for i := start; i < n; i += 3 {
			b.WriteByte(',')
			b.WriteString(integer[i : i+3])
		}
		integer = b.String()
	}

	result := integer
	if hasDecimal {
		result += "." + decimal
	}
	if neg {
		result = "-" + result
	}
	return result
}

// PadCell fits text to width using display-width-aware padding and
// truncation, honouring the column alignment. Wide runes count as two cells.
func PadCell(s string, width int, align Align) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	switch align {
	case AlignRight:
		return runewidth.FillLeft(s, width)
	case AlignCenter:
		gap := width - runewidth.StringWidth(s)
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return runewidth.FillRight(s, width)
	}
}
