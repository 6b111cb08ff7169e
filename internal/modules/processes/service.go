package processes

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/modules/advisory"
	"github.com/eivindh/rpa-radar/internal/modules/financial"
	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
	"github.com/eivindh/rpa-radar/internal/modules/scoring/scorers"
)

// Evaluation is the full derived picture for one process: sub-scores,
// composite score, priority, financial metrics and advisory outputs.
type Evaluation struct {
	SubScores domain.SubScores        `json:"sub_scores"`
	Composite domain.CompositeScore   `json:"composite"`
	Priority  domain.PriorityCategory `json:"priority"`
	Financial financial.Metrics       `json:"financial"`

	Recommendations      []string `json:"recommendations"`
	AutomationComplexity int      `json:"automation_complexity"`
	SeasonalBoost        int      `json:"seasonal_boost"`
	CriticalityScore     int      `json:"criticality_score"`

	AnnualVolume     int     `json:"annual_volume"`
	AnnualHoursSaved float64 `json:"annual_hours_saved"`
	AnnualCostSaving float64 `json:"annual_cost_saving"`
}

// Service drives the intake flow: validate, evaluate, persist.
type Service struct {
	repo       *Repository
	subScorer  *scorers.SubScorer
	composite  *scorers.CompositeScorer
	calculator *financial.Calculator
	advisor    *advisory.Advisor
	log        zerolog.Logger
}

// NewService creates a new intake service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		subScorer:  scorers.NewSubScorer(),
		composite:  scorers.NewCompositeScorer(),
		calculator: financial.NewCalculator(),
		advisor:    advisory.NewAdvisor(),
		log:        log.With().Str("service", "processes").Logger(),
	}
}

// Validate checks the required intake fields and returns the names of all
// missing ones as a single consolidated list.
func (s *Service) Validate(in ProcessInput) []string {
	var missing []string

	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Owner) == "" {
		missing = append(missing, "owner")
	}
	if strings.TrimSpace(in.Department) == "" {
		missing = append(missing, "department")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.MonthlyVolume == 0 {
		missing = append(missing, "monthly_volume")
	}
	if in.ProcessingMinutes == 0 {
		missing = append(missing, "processing_minutes")
	}

	return missing
}

// Evaluate derives every score and metric for the given input. Pure apart
// from the explicit evaluation time, which only the seasonal boost reads.
func (s *Service) Evaluate(in ProcessInput, at time.Time) Evaluation {
	apiAccess := domain.APIAccessFromString(in.APIAccess)

	sub := s.subScorer.Calculate(scorers.SubScoreInput{
		ProcessingMinutes: int(in.ProcessingMinutes),
		MonthlyVolume:     int(in.MonthlyVolume),
		FileFormats:       in.FileFormats,
		DataSources:       in.DataSources,
		APIAccess:         apiAccess,
		TrainingNeed:      domain.TrainingNeed(strings.ToLower(in.TrainingNeed)),
		ChangeMagnitude:   domain.ChangeMagnitude(strings.ToLower(in.ChangeMagnitude)),
		Resistance:        domain.Resistance(strings.ToLower(in.Resistance)),
	})

	riskFactors := domain.FilterRiskFactors(in.RiskFactors)
	bonusFactors := domain.FilterBonusFactors(in.BonusFactors)

	composite := s.composite.Calculate(scorers.CompositeInput{
		SubScores:         sub,
		OrgImpact:         sliderOrDefault(int(in.OrgImpact)),
		UserImpact:        sliderOrDefault(int(in.UserImpact)),
		Compliance:        sliderOrDefault(int(in.Compliance)),
		RiskFactors:       riskFactors,
		BonusFactors:      bonusFactors,
		MonthlyVolume:     int(in.MonthlyVolume),
		ProcessingMinutes: int(in.ProcessingMinutes),
		ErrorRatePercent:  float64(in.ErrorRatePercent),
	})

	// Derived annual figures
	annualVolume := int(in.MonthlyVolume) * 12
	annualHours := float64(annualVolume) * float64(in.ProcessingMinutes) / 60
	annualCostSaving := annualHours * float64(in.HourlyCost)

	metrics := s.calculator.Calculate(financial.Input{
		AnnualHoursSaved:      annualHours,
		HourlyCost:            float64(in.HourlyCost),
		ImplementationCost:    float64(in.ImplementationCost),
		AnnualMaintenanceCost: float64(in.AnnualMaintenanceCost),
		AnnualLicenseCost:     float64(in.AnnualLicenseCost),
		ImplementationMonths:  int(in.ImplementationMonths),
		LifetimeYears:         int(in.LifetimeYears),
	})

	difficulty := advisory.IntegrationDifficulty(strings.ToLower(in.IntegrationDifficulty))

	return Evaluation{
		SubScores: sub,
		Composite: composite,
		Priority:  domain.PriorityFromScore(composite.Adjusted),
		Financial: metrics,

		Recommendations:      s.advisor.Recommendations(int(in.MonthlyVolume), in.FileFormats, difficulty),
		AutomationComplexity: s.advisor.AutomationComplexity(sub.TechnicalComplexity, difficulty, advisory.ChangeImpact(strings.ToLower(in.ChangeImpact))),
		SeasonalBoost:        s.advisor.SeasonalBoost(advisory.SeasonalPattern(strings.ToLower(in.SeasonalPattern)), at),
		CriticalityScore:     s.advisor.CriticalityScore(advisory.Criticality(strings.ToLower(in.Criticality))),

		AnnualVolume:     annualVolume,
		AnnualHoursSaved: annualHours,
		AnnualCostSaving: annualCostSaving,
	}
}

// Build assembles a persistable Process from validated input and its
// evaluation.
func (s *Service) Build(in ProcessInput, ev Evaluation, at time.Time) *Process {
	return &Process{
		Name:        strings.TrimSpace(in.Name),
		Owner:       strings.TrimSpace(in.Owner),
		Department:  strings.TrimSpace(in.Department),
		Description: in.Description,
		Trigger:     in.Trigger,
		Frequency:   in.Frequency,

		MonthlyVolume:     int(in.MonthlyVolume),
		ProcessingMinutes: int(in.ProcessingMinutes),
		PeopleInvolved:    int(in.PeopleInvolved),
		ErrorRatePercent:  float64(in.ErrorRatePercent),
		HourlyCost:        float64(in.HourlyCost),

		AnnualVolume:     ev.AnnualVolume,
		AnnualHoursSaved: ev.AnnualHoursSaved,
		AnnualCostSaving: ev.AnnualCostSaving,

		ITSystems:   in.ITSystems,
		DataSources: in.DataSources,
		FileFormats: in.FileFormats,
		APIAccess:   domain.APIAccessFromString(in.APIAccess),

		TrainingNeed:    domain.TrainingNeed(strings.ToLower(in.TrainingNeed)),
		ChangeMagnitude: domain.ChangeMagnitude(strings.ToLower(in.ChangeMagnitude)),
		Resistance:      domain.Resistance(strings.ToLower(in.Resistance)),

		SubScores: ev.SubScores,

		OrgImpact:  sliderOrDefault(int(in.OrgImpact)),
		UserImpact: sliderOrDefault(int(in.UserImpact)),
		Compliance: sliderOrDefault(int(in.Compliance)),

		Composite: ev.Composite,
		Priority:  ev.Priority,

		RiskFactors:  domain.FilterRiskFactors(in.RiskFactors),
		BonusFactors: domain.FilterBonusFactors(in.BonusFactors),

		ImplementationCost:    float64(in.ImplementationCost),
		AnnualMaintenanceCost: float64(in.AnnualMaintenanceCost),
		AnnualLicenseCost:     float64(in.AnnualLicenseCost),
		ImplementationMonths:  int(in.ImplementationMonths),
		LifetimeYears:         ev.Financial.LifetimeYears,

		RealisticAnnualSavings: ev.Financial.RealisticAnnualSavings,
		ROIPercent:             ev.Financial.ROIPercent,
		PaybackMonths:          ev.Financial.PaybackMonths,
		NPV:                    ev.Financial.NPV,
		TotalLifetimeSavings:   ev.Financial.TotalLifetimeSavings,
		TotalLifetimeCost:      ev.Financial.TotalLifetimeCost,

		IntegrationDifficulty: advisory.IntegrationDifficulty(strings.ToLower(in.IntegrationDifficulty)),
		ChangeImpact:          advisory.ChangeImpact(strings.ToLower(in.ChangeImpact)),
		SeasonalPattern:       advisory.SeasonalPattern(strings.ToLower(in.SeasonalPattern)),
		Criticality:           advisory.Criticality(strings.ToLower(in.Criticality)),

		AutomationComplexity: ev.AutomationComplexity,
		SeasonalBoost:        ev.SeasonalBoost,
		CriticalityScore:     ev.CriticalityScore,
		Recommendations:      ev.Recommendations,

		RegisteredAt: at.Format(time.RFC3339),
	}
}

// Register validates, evaluates and persists a new process.
func (s *Service) Register(in ProcessInput, at time.Time) (*Process, []string, error) {
	if missing := s.Validate(in); len(missing) > 0 {
		return nil, missing, nil
	}

	ev := s.Evaluate(in, at)
	p := s.Build(in, ev, at)

	id, err := s.repo.Create(p)
	if err != nil {
		return nil, nil, err
	}
	p.ID = id

	return p, nil, nil
}

// Replace validates, re-evaluates and rewrites an existing process. Derived
// values are never patched in place; each edit recomputes the full record.
func (s *Service) Replace(id int64, in ProcessInput, at time.Time) (*Process, []string, error) {
	if missing := s.Validate(in); len(missing) > 0 {
		return nil, missing, nil
	}

	ev := s.Evaluate(in, at)
	p := s.Build(in, ev, at)
	p.ID = id

	if err := s.repo.Update(id, p); err != nil {
		return nil, nil, err
	}

	return p, nil, nil
}

// sliderOrDefault snaps a strategic slider into 1-5, defaulting the zero
// value to the neutral 3.
func sliderOrDefault(v int) int {
	if v == 0 {
		return 3
	}
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
