package financial

import (
	"math"

	"github.com/eivindh/rpa-radar/pkg/formulas"
)

// Business constants for the financial model.
const (
	// payrollOverheadMultiplier grosses hourly cost up to the true employer
	// cost (employer taxes, pension, insurance). Fixed regional rate.
	payrollOverheadMultiplier = 1.141

	// discountRate is the annual discount rate applied in the NPV calculation.
	discountRate = 0.08

	// defaultLifetimeYears is assumed when no expected lifetime is given.
	defaultLifetimeYears = 5
)

// Input carries the financial planning figures for one process.
type Input struct {
	AnnualHoursSaved      float64 `json:"annual_hours_saved"`
	HourlyCost            float64 `json:"hourly_cost"`
	ImplementationCost    float64 `json:"implementation_cost"`
	AnnualMaintenanceCost float64 `json:"annual_maintenance_cost"`
	AnnualLicenseCost     float64 `json:"annual_license_cost"`
	ImplementationMonths  int     `json:"implementation_months"`
	LifetimeYears         int     `json:"lifetime_years"`
}

// Metrics is the derived financial picture for one process. Values are kept
// as floats; rounding to whole currency units happens at the persistence
// boundary only.
type Metrics struct {
	RealisticAnnualSavings float64 `json:"realistic_annual_savings"`
	ROIPercent             float64 `json:"roi_percent"`
	PaybackMonths          float64 `json:"payback_months"`
	NPV                    float64 `json:"npv"`
	TotalLifetimeSavings   float64 `json:"total_lifetime_savings"`
	TotalLifetimeCost      float64 `json:"total_lifetime_cost"`
	LifetimeYears          int     `json:"lifetime_years"`
}

// Calculator derives financial metrics from process attributes and planning
// inputs. Stateless; recomputed in full on every save.
type Calculator struct{}

// NewCalculator creates a new financial calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate derives the full set of financial metrics. Division-by-zero cases
// degrade to 0 (ROI) or the payback sentinel, never an error.
func (c *Calculator) Calculate(in Input) Metrics {
	years := in.LifetimeYears
	if years <= 0 {
		years = defaultLifetimeYears
	}

	annualSavings := RealisticAnnualSavings(
		in.AnnualHoursSaved, in.HourlyCost, in.AnnualLicenseCost, in.AnnualMaintenanceCost)

	totalSavings := annualSavings * float64(years)
	totalCost := in.ImplementationCost + in.AnnualMaintenanceCost*float64(years)

	monthlyNet := annualSavings/12 - in.AnnualMaintenanceCost/12

	return Metrics{
		RealisticAnnualSavings: annualSavings,
		ROIPercent:             formulas.ROIPercent(totalSavings, totalCost),
		PaybackMonths:          formulas.PaybackMonths(in.ImplementationCost, monthlyNet),
		NPV:                    formulas.NPV(annualSavings-in.AnnualMaintenanceCost, years, discountRate, in.ImplementationCost),
		TotalLifetimeSavings:   totalSavings,
		TotalLifetimeCost:      totalCost,
		LifetimeYears:          years,
	}
}

// RealisticAnnualSavings is the gross labour saving grossed up by the payroll
// overhead multiplier, net of recurring license and maintenance cost, floored
// at zero.
func RealisticAnnualSavings(annualHoursSaved, hourlyCost, annualLicenseCost, annualMaintenanceCost float64) float64 {
	gross := annualHoursSaved * hourlyCost * payrollOverheadMultiplier
	return math.Max(0, math.Round(gross-annualLicenseCost-annualMaintenanceCost))
}
