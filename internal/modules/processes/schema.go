package processes

import "database/sql"

// Schema for the processes table. Numeric columns are INTEGER on purpose:
// every value destined for storage is rounded half away from zero on write.
const Schema = `
CREATE TABLE IF NOT EXISTS processes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    owner TEXT NOT NULL,
    department TEXT NOT NULL,
    description TEXT NOT NULL,
    trigger_event TEXT,
    frequency TEXT,
    monthly_volume INTEGER,
    processing_minutes INTEGER,
    people_involved INTEGER,
    error_rate INTEGER,
    hourly_cost INTEGER,
    annual_volume INTEGER,
    annual_hours_saved INTEGER,
    annual_cost_saving INTEGER,
    it_systems TEXT,
    data_sources TEXT,
    file_formats TEXT,
    api_access TEXT,
    training_need TEXT,
    change_magnitude TEXT,
    resistance TEXT,
    time_savings INTEGER,
    volume INTEGER,
    quality_improvement INTEGER,
    technical_complexity INTEGER,
    data_complexity INTEGER,
    rule_stability INTEGER,
    org_impact INTEGER,
    user_impact INTEGER,
    compliance INTEGER,
    gain_score INTEGER,
    feasibility_score INTEGER,
    strategic_score INTEGER,
    total_score INTEGER,
    adjusted_score INTEGER,
    volume_bonus INTEGER,
    priority TEXT,
    risk_factors TEXT,
    bonus_factors TEXT,
    implementation_cost INTEGER,
    annual_maintenance_cost INTEGER,
    annual_license_cost INTEGER,
    implementation_months INTEGER,
    lifetime_years INTEGER,
    realistic_annual_savings INTEGER,
    roi_percent INTEGER,
    payback_months INTEGER,
    npv INTEGER,
    total_lifetime_savings INTEGER,
    total_lifetime_cost INTEGER,
    integration_difficulty TEXT,
    change_impact TEXT,
    seasonal_pattern TEXT,
    criticality TEXT,
    automation_complexity INTEGER,
    seasonal_boost INTEGER,
    criticality_score INTEGER,
    recommendations TEXT,
    registered_at TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_processes_department ON processes(department);
CREATE INDEX IF NOT EXISTS idx_processes_priority ON processes(priority);
CREATE INDEX IF NOT EXISTS idx_processes_adjusted ON processes(adjusted_score);
`

// InitSchema ensures the processes table exists.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
