package domain

import "strings"

// APIAccess is the tri-state answer to "do the involved systems expose an API?".
type APIAccess string

const (
	APIAccessYes     APIAccess = "yes"
	APIAccessNo      APIAccess = "no"
	APIAccessUnknown APIAccess = "unknown"
)

// APIAccessFromString parses an API access value (case-insensitive).
// Unrecognized values map to unknown.
func APIAccessFromString(value string) APIAccess {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes":
		return APIAccessYes
	case "no":
		return APIAccessNo
	default:
		return APIAccessUnknown
	}
}

// TrainingNeed describes how much user training the automated process requires.
type TrainingNeed string

const (
	TrainingNone       TrainingNeed = "none"
	TrainingBrief      TrainingNeed = "brief"
	TrainingStructured TrainingNeed = "structured"
	TrainingExtensive  TrainingNeed = "extensive"
)

// ChangeMagnitude describes how much the process itself changes when automated.
type ChangeMagnitude string

const (
	ChangeNone     ChangeMagnitude = "none"
	ChangeMinor    ChangeMagnitude = "minor"
	ChangeModerate ChangeMagnitude = "moderate"
	ChangeMajor    ChangeMagnitude = "major"
)

// Resistance is the expected organizational resistance to the change.
type Resistance string

const (
	ResistanceLow    Resistance = "low"
	ResistanceMedium Resistance = "medium"
	ResistanceHigh   Resistance = "high"
)

// RiskFactors is the fixed list of selectable risk factors. Each selected
// factor subtracts one point from the adjusted score.
var RiskFactors = []string{
	"High organizational resistance",
	"Critical system dependencies",
	"Complex approval flows",
	"High security access",
}

// BonusFactors is the fixed list of selectable bonus factors. Each selected
// factor adds one point to the adjusted score.
var BonusFactors = []string{
	"Pilot / proof-of-concept value",
	"Synergy effects",
	"Existing system integrations",
}

// FilterRiskFactors drops entries that are not on the fixed risk factor list.
func FilterRiskFactors(values []string) []string {
	return filterKnown(values, RiskFactors)
}

// FilterBonusFactors drops entries that are not on the fixed bonus factor list.
func FilterBonusFactors(values []string) []string {
	return filterKnown(values, BonusFactors)
}

func filterKnown(values, known []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		for _, k := range known {
			if v == k {
				out = append(out, v)
				break
			}
		}
	}
	return out
}

// SubScores holds the six derived 1-5 ratings that feed the composite score.
type SubScores struct {
	TimeSavings         int `json:"time_savings"`
	Volume              int `json:"volume"`
	QualityImprovement  int `json:"quality_improvement"`
	TechnicalComplexity int `json:"technical_complexity"`
	DataComplexity      int `json:"data_complexity"`
	RuleStability       int `json:"rule_stability"`
}

// CompositeScore holds the three weighted pillars and the adjusted total.
// All values carry two decimal places; rounding to integers happens only at
// the persistence boundary.
type CompositeScore struct {
	Gain        float64 `json:"gain_score"`
	Feasibility float64 `json:"feasibility_score"`
	Strategic   float64 `json:"strategic_score"`
	Total       float64 `json:"total_score"`
	Adjusted    float64 `json:"adjusted_score"`
	VolumeBonus float64 `json:"volume_bonus"`
}
