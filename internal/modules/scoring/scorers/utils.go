package scorers

import (
	"math"
	"strings"
)

// round2 rounds to 2 decimal places
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// clampFloat limits f to [min, max]
func clampFloat(f, min, max float64) float64 {
	return math.Min(max, math.Max(min, f))
}

// clampScore caps an integer rating at 5, floor 1
func clampScore(s int) int {
	if s > 5 {
		return 5
	}
	if s < 1 {
		return 1
	}
	return s
}

// SplitList splits a comma-separated free-text field into its non-empty
// trimmed segments. Empty or whitespace-only input yields zero items.
func SplitList(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(field, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
