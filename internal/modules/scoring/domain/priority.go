package domain

// PriorityCategory is one of four ordered buckets derived from the adjusted score.
type PriorityCategory string

const (
	PriorityHigh          PriorityCategory = "HIGH"
	PriorityMedium        PriorityCategory = "MEDIUM"
	PriorityLow           PriorityCategory = "LOW"
	PriorityNotApplicable PriorityCategory = "NOT_APPLICABLE"
)

// Category thresholds on the 0-10 adjusted scale. Fixed design constants.
const (
	highThreshold   = 6.6
	mediumThreshold = 4.0
	lowThreshold    = 1.0
)

// PriorityFromScore maps an adjusted score to its priority category.
func PriorityFromScore(adjusted float64) PriorityCategory {
	switch {
	case adjusted >= highThreshold:
		return PriorityHigh
	case adjusted >= mediumThreshold:
		return PriorityMedium
	case adjusted >= lowThreshold:
		return PriorityLow
	default:
		return PriorityNotApplicable
	}
}

// Label returns a human-readable label for dashboards.
func (p PriorityCategory) Label() string {
	switch p {
	case PriorityHigh:
		return "High priority"
	case PriorityMedium:
		return "Medium priority"
	case PriorityLow:
		return "Low priority"
	default:
		return "Not applicable"
	}
}
