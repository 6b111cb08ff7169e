package processes

import (
	"math"
	"strconv"
	"strings"

	"github.com/eivindh/rpa-radar/internal/modules/advisory"
	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
)

// FlexFloat is a float64 that tolerates sloppy input: JSON numbers, numeric
// strings, null and garbage all decode without error. Unparseable values
// coerce to 0 so a bad field degrades a metric instead of failing the request.
type FlexFloat float64

// UnmarshalJSON implements the parse-as-float-else-zero coercion policy.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt is an int with the same coercion policy as FlexFloat: parse as
// float, round, else default to 0.
type FlexInt int

// UnmarshalJSON implements the coercion policy for integer-like fields.
func (i *FlexInt) UnmarshalJSON(b []byte) error {
	var f FlexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = FlexInt(math.Round(float64(f)))
	return nil
}

// ProcessInput is the intake payload: everything a user enters about a
// candidate process, before any scoring.
type ProcessInput struct {
	// Identity
	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Department  string `json:"department"`
	Description string `json:"description"`
	Trigger     string `json:"trigger"`
	Frequency   string `json:"frequency"`

	// Quantities
	MonthlyVolume     FlexInt   `json:"monthly_volume"`
	ProcessingMinutes FlexInt   `json:"processing_minutes"`
	PeopleInvolved    FlexInt   `json:"people_involved"`
	ErrorRatePercent  FlexFloat `json:"error_rate"`
	HourlyCost        FlexFloat `json:"hourly_cost"`

	// Technical landscape
	ITSystems   string `json:"it_systems"`
	DataSources string `json:"data_sources"`
	FileFormats string `json:"file_formats"`
	APIAccess   string `json:"api_access"`

	// Organizational change
	TrainingNeed    string `json:"training_need"`
	ChangeMagnitude string `json:"change_magnitude"`
	Resistance      string `json:"resistance"`

	// Strategic sliders (1-5, default 3)
	OrgImpact  FlexInt `json:"org_impact"`
	UserImpact FlexInt `json:"user_impact"`
	Compliance FlexInt `json:"compliance"`

	// Adjustment factors, validated against the fixed lists
	RiskFactors  []string `json:"risk_factors"`
	BonusFactors []string `json:"bonus_factors"`

	// Financial planning
	ImplementationCost    FlexFloat `json:"implementation_cost"`
	AnnualMaintenanceCost FlexFloat `json:"annual_maintenance_cost"`
	AnnualLicenseCost     FlexFloat `json:"annual_license_cost"`
	ImplementationMonths  FlexInt   `json:"implementation_months"`
	LifetimeYears         FlexInt   `json:"lifetime_years"`

	// Advisory context
	IntegrationDifficulty string `json:"integration_difficulty"`
	ChangeImpact          string `json:"change_impact"`
	SeasonalPattern       string `json:"seasonal_pattern"`
	Criticality           string `json:"criticality"`
}

// Process is the persisted record: the intake attributes plus every derived
// score and metric. Numeric columns are stored as whole numbers (the lossy
// persistence contract); in memory derived values stay floats.
type Process struct {
	ID int64 `json:"id"`

	Name        string `json:"name"`
	Owner       string `json:"owner"`
	Department  string `json:"department"`
	Description string `json:"description"`
	Trigger     string `json:"trigger"`
	Frequency   string `json:"frequency"`

	MonthlyVolume     int     `json:"monthly_volume"`
	ProcessingMinutes int     `json:"processing_minutes"`
	PeopleInvolved    int     `json:"people_involved"`
	ErrorRatePercent  float64 `json:"error_rate"`
	HourlyCost        float64 `json:"hourly_cost"`

	AnnualVolume     int     `json:"annual_volume"`
	AnnualHoursSaved float64 `json:"annual_hours_saved"`
	AnnualCostSaving float64 `json:"annual_cost_saving"`

	ITSystems   string           `json:"it_systems"`
	DataSources string           `json:"data_sources"`
	FileFormats string           `json:"file_formats"`
	APIAccess   domain.APIAccess `json:"api_access"`

	TrainingNeed    domain.TrainingNeed    `json:"training_need"`
	ChangeMagnitude domain.ChangeMagnitude `json:"change_magnitude"`
	Resistance      domain.Resistance      `json:"resistance"`

	SubScores domain.SubScores `json:"sub_scores"`

	OrgImpact  int `json:"org_impact"`
	UserImpact int `json:"user_impact"`
	Compliance int `json:"compliance"`

	Composite domain.CompositeScore   `json:"composite"`
	Priority  domain.PriorityCategory `json:"priority"`

	RiskFactors  []string `json:"risk_factors"`
	BonusFactors []string `json:"bonus_factors"`

	ImplementationCost    float64 `json:"implementation_cost"`
	AnnualMaintenanceCost float64 `json:"annual_maintenance_cost"`
	AnnualLicenseCost     float64 `json:"annual_license_cost"`
	ImplementationMonths  int     `json:"implementation_months"`
	LifetimeYears         int     `json:"lifetime_years"`

	RealisticAnnualSavings float64 `json:"realistic_annual_savings"`
	ROIPercent             float64 `json:"roi_percent"`
	PaybackMonths          float64 `json:"payback_months"`
	NPV                    float64 `json:"npv"`
	TotalLifetimeSavings   float64 `json:"total_lifetime_savings"`
	TotalLifetimeCost      float64 `json:"total_lifetime_cost"`

	IntegrationDifficulty advisory.IntegrationDifficulty `json:"integration_difficulty"`
	ChangeImpact          advisory.ChangeImpact          `json:"change_impact"`
	SeasonalPattern       advisory.SeasonalPattern       `json:"seasonal_pattern"`
	Criticality           advisory.Criticality           `json:"criticality"`

	AutomationComplexity int      `json:"automation_complexity"`
	SeasonalBoost        int      `json:"seasonal_boost"`
	CriticalityScore     int      `json:"criticality_score"`
	Recommendations      []string `json:"recommendations"`

	RegisteredAt string `json:"registered_at"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}
