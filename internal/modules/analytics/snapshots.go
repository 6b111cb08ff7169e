package analytics

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
)

// SnapshotSchema holds the nightly portfolio aggregates written by the
// snapshot job, so trends survive process edits and deletions.
const SnapshotSchema = `
CREATE TABLE IF NOT EXISTS process_snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    taken_at TEXT NOT NULL,
    process_count INTEGER NOT NULL,
    total_annual_savings INTEGER NOT NULL,
    total_annual_hours INTEGER NOT NULL,
    high_priority_count INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_process_snapshots_taken_at ON process_snapshots(taken_at);
`

// Snapshot is one persisted portfolio aggregate.
type Snapshot struct {
	ID                 int64   `json:"id"`
	TakenAt            string  `json:"taken_at"`
	ProcessCount       int     `json:"process_count"`
	TotalAnnualSavings float64 `json:"total_annual_savings"`
	TotalAnnualHours   float64 `json:"total_annual_hours"`
	HighPriorityCount  int     `json:"high_priority_count"`
}

// SnapshotRepository persists portfolio snapshots.
type SnapshotRepository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *sql.DB, log zerolog.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		db:  db,
		log: log.With().Str("repo", "snapshots").Logger(),
	}
}

// Record stores one portfolio overview as a snapshot row.
func (r *SnapshotRepository) Record(ov *Overview, at time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO process_snapshots
		(taken_at, process_count, total_annual_savings, total_annual_hours, high_priority_count)
		VALUES (?, ?, ?, ?, ?)`,
		at.Format(time.RFC3339),
		ov.ProcessCount,
		int(math.Round(ov.TotalAnnualSavings)),
		int(math.Round(ov.TotalAnnualHours)),
		ov.HighPriorityCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}

	r.log.Info().
		Int("process_count", ov.ProcessCount).
		Int("high_priority", ov.HighPriorityCount).
		Msg("Portfolio snapshot recorded")
	return nil
}

// Recent returns the most recent snapshots, newest first.
func (r *SnapshotRepository) Recent(limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := r.db.Query(`
		SELECT id, taken_at, process_count, total_annual_savings, total_annual_hours, high_priority_count
		FROM process_snapshots
		ORDER BY taken_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.TakenAt, &s.ProcessCount,
			&s.TotalAnnualSavings, &s.TotalAnnualHours, &s.HighPriorityCount); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
