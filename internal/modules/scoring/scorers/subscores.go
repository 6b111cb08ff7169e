package scorers

import (
	"math"
	"strings"

	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
)

// SubScoreInput carries the raw process attributes the six sub-score rules
// consume. All fields are tolerated at their zero value.
type SubScoreInput struct {
	ProcessingMinutes int
	MonthlyVolume     int
	FileFormats       string // free-text, comma-separated
	DataSources       string // free-text, comma-separated
	APIAccess         domain.APIAccess
	TrainingNeed      domain.TrainingNeed
	ChangeMagnitude   domain.ChangeMagnitude
	Resistance        domain.Resistance
}

// SubScorer derives the six 1-5 ratings from raw process attributes.
// Every rule is deterministic and total; the scorer carries no state.
type SubScorer struct{}

// NewSubScorer creates a new sub-score calculator
func NewSubScorer() *SubScorer {
	return &SubScorer{}
}

// Calculate derives all six sub-scores
func (s *SubScorer) Calculate(in SubScoreInput) domain.SubScores {
	return domain.SubScores{
		TimeSavings:         TimeSavingsScore(in.ProcessingMinutes),
		Volume:              VolumeScore(in.MonthlyVolume),
		QualityImprovement:  QualityImprovementScore(in),
		TechnicalComplexity: TechnicalComplexityScore(in.FileFormats),
		DataComplexity:      DataComplexityScore(in.DataSources, in.FileFormats, in.APIAccess),
		RuleStability:       RuleStabilityScore(in.ProcessingMinutes, in.MonthlyVolume),
	}
}

// TimeSavingsScore rates savings potential from the manual processing time.
// Longer processes free up more hours when automated.
func TimeSavingsScore(processingMinutes int) int {
	switch {
	case processingMinutes >= 120:
		return 5
	case processingMinutes >= 60:
		return 4
	case processingMinutes >= 30:
		return 3
	case processingMinutes >= 10:
		return 2
	default:
		return 1
	}
}

// VolumeScore rates the monthly execution count.
func VolumeScore(monthlyVolume int) int {
	switch {
	case monthlyVolume >= 1000:
		return 5
	case monthlyVolume >= 500:
		return 4
	case monthlyVolume >= 200:
		return 3
	case monthlyVolume >= 50:
		return 2
	default:
		return 1
	}
}

// QualityImprovementScore rates the quality gain from automating. The base
// tier follows joint time/volume thresholds; low-friction change attributes
// (light training, minor process change, low resistance) add up to +3,
// capped at 5.
func QualityImprovementScore(in SubScoreInput) int {
	min, cnt := in.ProcessingMinutes, in.MonthlyVolume

	var base int
	switch {
	case min >= 60 && cnt >= 100:
		base = 5
	case (min >= 30 && cnt >= 50) || min >= 90:
		base = 4
	case min >= 15 || cnt >= 20:
		base = 3
	case min >= 5 || cnt >= 10:
		base = 2
	default:
		base = 1
	}

	if in.TrainingNeed == domain.TrainingBrief || in.TrainingNeed == domain.TrainingStructured {
		base++
	}
	if in.ChangeMagnitude == domain.ChangeMinor {
		base++
	}
	if in.Resistance == domain.ResistanceLow {
		base++
	}

	return clampScore(base)
}

// TechnicalComplexityScore rates integration ease from the file-format field.
// Rules are checked in a fixed priority order; only the first match applies.
// An exposed API is the cheapest surface to automate against, so it ranks
// highest.
func TechnicalComplexityScore(fileFormats string) int {
	f := strings.ToLower(strings.TrimSpace(fileFormats))
	if f == "" {
		return 3 // nothing declared, assume medium
	}

	switch {
	case strings.Contains(f, "api"):
		return 5
	case strings.Contains(f, "xml"), strings.Contains(f, "json"):
		return 4
	case strings.Contains(f, "pdf"), strings.Contains(f, "word"), strings.Contains(f, "docx"):
		return 3
	case strings.Contains(f, "excel"), strings.Contains(f, "xlsx"), strings.Contains(f, "csv"):
		return 4
	default:
		return 2
	}
}

// DataComplexityScore rates how much data wrangling the automation needs:
// one point per extra data source, half a point per extra file format, one
// point when an API is available. Rounded, capped at 5.
func DataComplexityScore(dataSources, fileFormats string, apiAccess domain.APIAccess) int {
	score := 1.0

	if n := len(SplitList(dataSources)); n > 1 {
		score += float64(n-1) * 1.0
	}
	if n := len(SplitList(fileFormats)); n > 1 {
		score += float64(n-1) * 0.5
	}
	if apiAccess == domain.APIAccessYes {
		score += 1.0
	}

	return clampScore(int(math.Round(score)))
}

// RuleStabilityScore rates how stable the process rules are likely to be.
// Long-running, high-volume processes tend to be mature and stable.
func RuleStabilityScore(processingMinutes, monthlyVolume int) int {
	switch {
	case processingMinutes >= 60 && monthlyVolume >= 100:
		return 5
	case processingMinutes >= 30 && monthlyVolume >= 50:
		return 4
	case processingMinutes >= 15 || monthlyVolume >= 20:
		return 3
	default:
		return 2
	}
}
