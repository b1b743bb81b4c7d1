package dataprocessing

import (
	"strconv"
	"strings"
)

// ParseNumber converts a textual cell value into a number, handling
// thousands separators and surrounding whitespace. Anything that does not
// parse (empty cells, stray text) yields zero so a bad cell degrades the
// aggregate instead of failing the row.
func ParseNumber(val string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(val, ",", ""))
	if cleaned == "" {
		return 0
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}
