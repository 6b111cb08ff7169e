package scorers

import (
	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
)

// Pillar weights. Fixed design constants, not runtime-configurable.
const (
	weightTime    = 0.4
	weightVolume  = 0.4
	weightQuality = 0.2

	weightTechnical = 0.3
	weightData      = 0.4
	weightStability = 0.3

	weightOrg        = 0.3
	weightUser       = 0.4
	weightCompliance = 0.3
)

// CompositeInput carries everything the composite formula consumes: the six
// derived sub-scores, the three manually-set strategic sliders (1-5), the
// selected risk/bonus factors, and the raw quantities behind the volume bonus.
type CompositeInput struct {
	SubScores domain.SubScores

	OrgImpact  int // organizational impact slider, 1-5
	UserImpact int // user impact slider, 1-5
	Compliance int // regulatory compliance slider, 1-5

	RiskFactors  []string
	BonusFactors []string

	MonthlyVolume     int
	ProcessingMinutes int
	ErrorRatePercent  float64
}

// CompositeScorer folds sub-scores, strategic sliders and adjustment factors
// into the gain/feasibility/strategic pillars and the adjusted total.
type CompositeScorer struct{}

// NewCompositeScorer creates a new composite scorer
func NewCompositeScorer() *CompositeScorer {
	return &CompositeScorer{}
}

// Calculate computes the composite score. Pillars land on a 0-10 scale, the
// adjusted total is clamped to [0, 10], and everything is rounded to two
// decimals. Identical inputs always yield identical results.
func (cs *CompositeScorer) Calculate(in CompositeInput) domain.CompositeScore {
	sub := in.SubScores

	gain := (float64(sub.TimeSavings)*weightTime +
		float64(sub.Volume)*weightVolume +
		float64(sub.QualityImprovement)*weightQuality) * 2

	feasibility := (float64(sub.TechnicalComplexity)*weightTechnical +
		float64(sub.DataComplexity)*weightData +
		float64(sub.RuleStability)*weightStability) * 2

	strategic := (float64(in.OrgImpact)*weightOrg +
		float64(in.UserImpact)*weightUser +
		float64(in.Compliance)*weightCompliance) * 2

	total := (gain + feasibility + strategic) / 3

	volumeBonus := VolumeBonus(in.MonthlyVolume, in.ProcessingMinutes, in.ErrorRatePercent)

	riskPenalty := float64(len(in.RiskFactors))
	bonusPoints := float64(len(in.BonusFactors))

	adjusted := clampFloat(total+bonusPoints+volumeBonus-riskPenalty, 0, 10)

	return domain.CompositeScore{
		Gain:        round2(gain),
		Feasibility: round2(feasibility),
		Strategic:   round2(strategic),
		Total:       round2(total),
		Adjusted:    round2(adjusted),
		VolumeBonus: round2(volumeBonus),
	}
}

// VolumeBonus accumulates extra points from raw quantities. Each of the three
// thresholds contributes independently.
func VolumeBonus(monthlyVolume, processingMinutes int, errorRatePercent float64) float64 {
	bonus := 0.0

	if monthlyVolume > 500 {
		bonus += 1.0
	} else if monthlyVolume > 200 {
		bonus += 0.5
	}

	if processingMinutes > 60 {
		bonus += 1.0
	} else if processingMinutes > 30 {
		bonus += 0.5
	}

	if errorRatePercent > 15 {
		bonus += 1.0
	} else if errorRatePercent > 5 {
		bonus += 0.5
	}

	return bonus
}
