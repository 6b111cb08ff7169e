package advisory

import (
	"math"
	"strings"
	"time"
)

// IntegrationDifficulty describes how hard the surrounding systems are to
// integrate with.
type IntegrationDifficulty string

const (
	IntegrationNone     IntegrationDifficulty = "none"
	IntegrationSimple   IntegrationDifficulty = "simple"
	IntegrationModerate IntegrationDifficulty = "moderate"
	IntegrationComplex  IntegrationDifficulty = "complex"
	IntegrationLegacy   IntegrationDifficulty = "legacy"
)

// integrationScores maps difficulty tiers to 1-5 complexity points.
var integrationScores = map[IntegrationDifficulty]int{
	IntegrationNone:     1,
	IntegrationSimple:   2,
	IntegrationModerate: 3,
	IntegrationComplex:  4,
	IntegrationLegacy:   5,
}

// ChangeImpact describes how far the organizational change reaches.
type ChangeImpact string

const (
	ImpactMinimal        ChangeImpact = "minimal"
	ImpactModerate       ChangeImpact = "moderate"
	ImpactSignificant    ChangeImpact = "significant"
	ImpactTransformative ChangeImpact = "transformative"
)

var changeImpactScores = map[ChangeImpact]int{
	ImpactMinimal:        1,
	ImpactModerate:       2,
	ImpactSignificant:    3,
	ImpactTransformative: 4,
}

// SeasonalPattern marks when the process load peaks over the year.
type SeasonalPattern string

const (
	SeasonNone       SeasonalPattern = "none"
	SeasonQuarterEnd SeasonalPattern = "quarter_end"
	SeasonYearEnd    SeasonalPattern = "year_end"
	SeasonSummer     SeasonalPattern = "summer"
)

// Criticality is the declared business criticality tier of the process.
type Criticality string

const (
	CriticalityLow       Criticality = "low"
	CriticalityStandard  Criticality = "standard"
	CriticalityImportant Criticality = "important"
	CriticalityHigh      Criticality = "business_critical"
	CriticalityMission   Criticality = "mission_critical"
)

var criticalityScores = map[Criticality]int{
	CriticalityLow:       1,
	CriticalityStandard:  2,
	CriticalityImportant: 3,
	CriticalityHigh:      4,
	CriticalityMission:   5,
}

// Advisor produces the rule-based recommendations and auxiliary scores shown
// next to the priority score. Stateless.
type Advisor struct{}

// NewAdvisor creates a new advisor
func NewAdvisor() *Advisor {
	return &Advisor{}
}

// Recommendations returns up to three ordered tooling hints. The rule order
// is fixed: volume tier first, then file-format/API matches, then integration
// difficulty matches.
func (a *Advisor) Recommendations(monthlyVolume int, fileFormats string, difficulty IntegrationDifficulty) []string {
	var recs []string

	if monthlyVolume >= 100 {
		recs = append(recs, "High volume: run on a cloud-scale RPA platform with queue-based dispatch")
	} else {
		recs = append(recs, "Low volume: desktop automation is sufficient")
	}

	f := strings.ToLower(fileFormats)
	switch {
	case strings.Contains(f, "api"):
		recs = append(recs, "API available: prefer direct API integration over UI automation")
	case strings.Contains(f, "pdf"):
		recs = append(recs, "PDF input: budget for OCR and document understanding")
	case strings.Contains(f, "excel"), strings.Contains(f, "xlsx"), strings.Contains(f, "csv"):
		recs = append(recs, "Spreadsheet input: use native workbook connectors")
	case strings.Contains(f, "web"):
		recs = append(recs, "Web applications: use browser automation with resilient selectors")
	}

	switch difficulty {
	case IntegrationLegacy:
		recs = append(recs, "Legacy systems: plan for screen scraping and surface automation")
	case IntegrationComplex:
		recs = append(recs, "Complex landscape: combine a cloud platform with API orchestration")
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	return recs
}

// AutomationComplexity is the mean of the technical-complexity sub-score, the
// integration-difficulty score and the change-impact score, rounded and
// capped at 5.
func (a *Advisor) AutomationComplexity(technicalScore int, difficulty IntegrationDifficulty, impact ChangeImpact) int {
	integration, ok := integrationScores[difficulty]
	if !ok {
		integration = 3
	}
	change, ok := changeImpactScores[impact]
	if !ok {
		change = 2
	}

	mean := float64(technicalScore+integration+change) / 3
	score := int(math.Round(mean))
	if score > 5 {
		score = 5
	}
	if score < 1 {
		score = 1
	}
	return score
}

// SeasonalBoost returns the extra urgency points a seasonal process earns
// when evaluated close to its peak. The evaluation time is an explicit
// parameter so the result stays reproducible.
func (a *Advisor) SeasonalBoost(pattern SeasonalPattern, at time.Time) int {
	month := at.Month()

	switch pattern {
	case SeasonYearEnd:
		if month == time.November || month == time.December {
			return 2
		}
		if month == time.January {
			return 1
		}
	case SeasonQuarterEnd:
		switch month {
		case time.March, time.June, time.September, time.December:
			return 1
		}
	case SeasonSummer:
		switch month {
		case time.June, time.July, time.August:
			return 1
		}
	}
	return 0
}

// CriticalityScore maps the declared criticality tier to a 1-5 score.
// Unknown tiers land on the neutral middle.
func (a *Advisor) CriticalityScore(tier Criticality) int {
	if score, ok := criticalityScores[tier]; ok {
		return score
	}
	return 3
}
