package dataprocessing

import (
	"strings"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/pkg/contracts/domain"
)

// Grouping-key rules, evaluated tier by tier in document order within each
// tier. If nothing matches, the first header wins by position.
var groupKeyRules = [][]string{
	{"state"},
	{"district", "region", "area"},
}

// skipTokens excludes identifier-like columns from the metric set. Checked
// before includeTokens, so a header matching both is excluded.
var skipTokens = []string{
	"date", "pincode", "pin", "id", "code", "registrar", "source",
}

// includeTokens marks age-group and count columns as summable metrics.
var includeTokens = []string{
	"age", "yrs", "years", "enrol", "update", "count", "total",
	"bio", "demo", "child", "adult", "senior", "0_5", "5_17", "17",
	"0-5", "5-17", "18", "greater", "plus", "above",
}

// DetectColumns classifies one header row: exactly one grouping key (when any
// header exists) and zero or more metric columns, in document order.
// Matching is case-insensitive; header case is preserved in the result for
// display and row lookups.
func DetectColumns(headers []string) domain.Classification {
	var class domain.Classification

	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(h)
	}

	for _, tokens := range groupKeyRules {
		for i, h := range lower {
			if containsAny(h, tokens) {
				class.GroupKey = headers[i]
				break
			}
		}
		if class.GroupKey != "" {
			break
		}
	}
	// Positional fallback: tables without a recognizable region column are
	// grouped by their first column.
	if class.GroupKey == "" && len(headers) > 0 {
		class.GroupKey = headers[0]
	}

	for i, h := range headers {
		if h == class.GroupKey {
			continue
		}
		if containsAny(lower[i], skipTokens) {
			continue
		}
		if containsAny(lower[i], includeTokens) || startsWithDigit(lower[i]) {
			class.Metrics = append(class.Metrics, h)
		}
	}

	return class
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}
