package processes

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/modules/advisory"
	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
)

// Repository handles process database operations. It owns the persistence
// contract: every numeric value is rounded half away from zero to a whole
// number on write, and list-valued fields are stored comma-joined.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new process repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "processes").Logger(),
	}
}

// Filter narrows List results. Zero values mean "no filter".
type Filter struct {
	Department string
	Priority   domain.PriorityCategory
	MinScore   float64
}

const processColumns = `
	id, name, owner, department, description, trigger_event, frequency,
	monthly_volume, processing_minutes, people_involved, error_rate, hourly_cost,
	annual_volume, annual_hours_saved, annual_cost_saving,
	it_systems, data_sources, file_formats, api_access,
	training_need, change_magnitude, resistance,
	time_savings, volume, quality_improvement, technical_complexity, data_complexity, rule_stability,
	org_impact, user_impact, compliance,
	gain_score, feasibility_score, strategic_score, total_score, adjusted_score, volume_bonus,
	priority, risk_factors, bonus_factors,
	implementation_cost, annual_maintenance_cost, annual_license_cost,
	implementation_months, lifetime_years,
	realistic_annual_savings, roi_percent, payback_months, npv,
	total_lifetime_savings, total_lifetime_cost,
	integration_difficulty, change_impact, seasonal_pattern, criticality,
	automation_complexity, seasonal_boost, criticality_score, recommendations,
	registered_at, created_at, updated_at`

// Create inserts a new process record and returns its id.
func (r *Repository) Create(p *Process) (int64, error) {
	now := time.Now().Format(time.RFC3339)

	query := `
		INSERT INTO processes (
			name, owner, department, description, trigger_event, frequency,
			monthly_volume, processing_minutes, people_involved, error_rate, hourly_cost,
			annual_volume, annual_hours_saved, annual_cost_saving,
			it_systems, data_sources, file_formats, api_access,
			training_need, change_magnitude, resistance,
			time_savings, volume, quality_improvement, technical_complexity, data_complexity, rule_stability,
			org_impact, user_impact, compliance,
			gain_score, feasibility_score, strategic_score, total_score, adjusted_score, volume_bonus,
			priority, risk_factors, bonus_factors,
			implementation_cost, annual_maintenance_cost, annual_license_cost,
			implementation_months, lifetime_years,
			realistic_annual_savings, roi_percent, payback_months, npv,
			total_lifetime_savings, total_lifetime_cost,
			integration_difficulty, change_impact, seasonal_pattern, criticality,
			automation_complexity, seasonal_boost, criticality_score, recommendations,
			registered_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		          ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		          ?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.Exec(query, r.writeArgs(p, now, now)...)
	if err != nil {
		return 0, fmt.Errorf("failed to create process: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new process id: %w", err)
	}

	r.log.Info().
		Int64("id", id).
		Str("name", p.Name).
		Str("priority", string(p.Priority)).
		Msg("Process created")

	return id, nil
}

// Update rewrites an existing record. The caller supplies the record id.
func (r *Repository) Update(id int64, p *Process) error {
	now := time.Now().Format(time.RFC3339)

	query := `
		UPDATE processes SET
			name = ?, owner = ?, department = ?, description = ?, trigger_event = ?, frequency = ?,
			monthly_volume = ?, processing_minutes = ?, people_involved = ?, error_rate = ?, hourly_cost = ?,
			annual_volume = ?, annual_hours_saved = ?, annual_cost_saving = ?,
			it_systems = ?, data_sources = ?, file_formats = ?, api_access = ?,
			training_need = ?, change_magnitude = ?, resistance = ?,
			time_savings = ?, volume = ?, quality_improvement = ?, technical_complexity = ?,
			data_complexity = ?, rule_stability = ?,
			org_impact = ?, user_impact = ?, compliance = ?,
			gain_score = ?, feasibility_score = ?, strategic_score = ?, total_score = ?,
			adjusted_score = ?, volume_bonus = ?,
			priority = ?, risk_factors = ?, bonus_factors = ?,
			implementation_cost = ?, annual_maintenance_cost = ?, annual_license_cost = ?,
			implementation_months = ?, lifetime_years = ?,
			realistic_annual_savings = ?, roi_percent = ?, payback_months = ?, npv = ?,
			total_lifetime_savings = ?, total_lifetime_cost = ?,
			integration_difficulty = ?, change_impact = ?, seasonal_pattern = ?, criticality = ?,
			automation_complexity = ?, seasonal_boost = ?, criticality_score = ?, recommendations = ?,
			registered_at = ?, updated_at = ?
		WHERE id = ?
	`

	args := r.writeArgs(p, "", now)
	// writeArgs appends registered_at, created_at, updated_at; Update has no
	// created_at column so drop it and append the id.
	args = append(args[:len(args)-3], p.RegisteredAt, now, id)

	res, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update process: %w", err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}

	r.log.Info().Int64("id", id).Str("name", p.Name).Msg("Process updated")
	return nil
}

// Delete removes a record by id.
func (r *Repository) Delete(id int64) error {
	res, err := r.db.Exec("DELETE FROM processes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete process: %w", err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}

	r.log.Info().Int64("id", id).Msg("Process deleted")
	return nil
}

// GetByID retrieves one process, or nil when it does not exist.
func (r *Repository) GetByID(id int64) (*Process, error) {
	row := r.db.QueryRow("SELECT"+processColumns+" FROM processes WHERE id = ?", id)

	p, err := r.scanProcess(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get process: %w", err)
	}
	return p, nil
}

// List retrieves processes matching the filter, newest first.
func (r *Repository) List(f Filter) ([]Process, error) {
	query := "SELECT" + processColumns + " FROM processes WHERE 1=1"
	var args []interface{}

	if f.Department != "" {
		query += " AND department = ?"
		args = append(args, f.Department)
	}
	if f.Priority != "" {
		query += " AND priority = ?"
		args = append(args, string(f.Priority))
	}
	if f.MinScore > 0 {
		query += " AND adjusted_score >= ?"
		args = append(args, f.MinScore)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}
	defer rows.Close()

	var result []Process
	for rows.Next() {
		p, err := r.scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan process: %w", err)
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

// DistinctDepartments returns the departments present in the portfolio, sorted.
func (r *Repository) DistinctDepartments() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT department FROM processes ORDER BY department")
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// writeArgs flattens a Process into the column order shared by INSERT and
// UPDATE, applying the integer persistence contract.
func (r *Repository) writeArgs(p *Process, createdAt, updatedAt string) []interface{} {
	return []interface{}{
		strings.TrimSpace(p.Name),
		strings.TrimSpace(p.Owner),
		strings.TrimSpace(p.Department),
		p.Description,
		p.Trigger,
		p.Frequency,
		p.MonthlyVolume,
		p.ProcessingMinutes,
		p.PeopleInvolved,
		storedInt(p.ErrorRatePercent),
		storedInt(p.HourlyCost),
		p.AnnualVolume,
		storedInt(p.AnnualHoursSaved),
		storedInt(p.AnnualCostSaving),
		p.ITSystems,
		p.DataSources,
		p.FileFormats,
		string(p.APIAccess),
		string(p.TrainingNeed),
		string(p.ChangeMagnitude),
		string(p.Resistance),
		p.SubScores.TimeSavings,
		p.SubScores.Volume,
		p.SubScores.QualityImprovement,
		p.SubScores.TechnicalComplexity,
		p.SubScores.DataComplexity,
		p.SubScores.RuleStability,
		p.OrgImpact,
		p.UserImpact,
		p.Compliance,
		storedInt(p.Composite.Gain),
		storedInt(p.Composite.Feasibility),
		storedInt(p.Composite.Strategic),
		storedInt(p.Composite.Total),
		storedInt(p.Composite.Adjusted),
		storedInt(p.Composite.VolumeBonus),
		string(p.Priority),
		strings.Join(p.RiskFactors, ", "),
		strings.Join(p.BonusFactors, ", "),
		storedInt(p.ImplementationCost),
		storedInt(p.AnnualMaintenanceCost),
		storedInt(p.AnnualLicenseCost),
		p.ImplementationMonths,
		p.LifetimeYears,
		storedInt(p.RealisticAnnualSavings),
		storedInt(p.ROIPercent),
		storedInt(p.PaybackMonths),
		storedInt(p.NPV),
		storedInt(p.TotalLifetimeSavings),
		storedInt(p.TotalLifetimeCost),
		string(p.IntegrationDifficulty),
		string(p.ChangeImpact),
		string(p.SeasonalPattern),
		string(p.Criticality),
		p.AutomationComplexity,
		p.SeasonalBoost,
		p.CriticalityScore,
		strings.Join(p.Recommendations, "; "),
		p.RegisteredAt,
		createdAt,
		updatedAt,
	}
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanProcess(row scanner) (*Process, error) {
	var p Process
	var apiAccess, trainingNeed, changeMagnitude, resistance string
	var priority, riskFactors, bonusFactors string
	var integrationDifficulty, changeImpact, seasonalPattern, criticality string
	var recommendations string

	err := row.Scan(
		&p.ID, &p.Name, &p.Owner, &p.Department, &p.Description, &p.Trigger, &p.Frequency,
		&p.MonthlyVolume, &p.ProcessingMinutes, &p.PeopleInvolved, &p.ErrorRatePercent, &p.HourlyCost,
		&p.AnnualVolume, &p.AnnualHoursSaved, &p.AnnualCostSaving,
		&p.ITSystems, &p.DataSources, &p.FileFormats, &apiAccess,
		&trainingNeed, &changeMagnitude, &resistance,
		&p.SubScores.TimeSavings, &p.SubScores.Volume, &p.SubScores.QualityImprovement,
		&p.SubScores.TechnicalComplexity, &p.SubScores.DataComplexity, &p.SubScores.RuleStability,
		&p.OrgImpact, &p.UserImpact, &p.Compliance,
		&p.Composite.Gain, &p.Composite.Feasibility, &p.Composite.Strategic,
		&p.Composite.Total, &p.Composite.Adjusted, &p.Composite.VolumeBonus,
		&priority, &riskFactors, &bonusFactors,
		&p.ImplementationCost, &p.AnnualMaintenanceCost, &p.AnnualLicenseCost,
		&p.ImplementationMonths, &p.LifetimeYears,
		&p.RealisticAnnualSavings, &p.ROIPercent, &p.PaybackMonths, &p.NPV,
		&p.TotalLifetimeSavings, &p.TotalLifetimeCost,
		&integrationDifficulty, &changeImpact, &seasonalPattern, &criticality,
		&p.AutomationComplexity, &p.SeasonalBoost, &p.CriticalityScore, &recommendations,
		&p.RegisteredAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.APIAccess = domain.APIAccess(apiAccess)
	p.TrainingNeed = domain.TrainingNeed(trainingNeed)
	p.ChangeMagnitude = domain.ChangeMagnitude(changeMagnitude)
	p.Resistance = domain.Resistance(resistance)
	p.Priority = domain.PriorityCategory(priority)
	p.IntegrationDifficulty = advisory.IntegrationDifficulty(integrationDifficulty)
	p.ChangeImpact = advisory.ChangeImpact(changeImpact)
	p.SeasonalPattern = advisory.SeasonalPattern(seasonalPattern)
	p.Criticality = advisory.Criticality(criticality)

	// Stored comma-joined; unknown entries are filtered out on read.
	p.RiskFactors = domain.FilterRiskFactors(splitStored(riskFactors))
	p.BonusFactors = domain.FilterBonusFactors(splitStored(bonusFactors))

	if recommendations != "" {
		p.Recommendations = strings.Split(recommendations, "; ")
	}

	return &p, nil
}

// storedInt applies the persistence rounding contract: round half away from
// zero to a whole number.
func storedInt(f float64) int {
	return int(math.Round(f))
}

func splitStored(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
