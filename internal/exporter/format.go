package exporter

import (
	"strconv"
	"strings"
)

// formatCount renders an aggregate value for console output: rounded to a
// whole number with thousands separators, e.g. 1234567.0 -> "1,234,567".
func formatCount(f float64) string {
	s := strconv.FormatFloat(f, 'f', 0, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// formatFloat formats a float64 value for CSV output with exactly 2 decimal
// places so values like 13.4 appear as 13.40.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
