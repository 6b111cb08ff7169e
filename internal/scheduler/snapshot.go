package scheduler

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/modules/analytics"
	"github.com/eivindh/rpa-radar/internal/modules/processes"
)

// SnapshotJob records a nightly aggregate of the process portfolio so the
// dashboard can show how the pipeline develops over time.
type SnapshotJob struct {
	analytics *analytics.Service
	snapshots *analytics.SnapshotRepository
	log       zerolog.Logger
}

// NewSnapshotJob creates a new snapshot job
func NewSnapshotJob(svc *analytics.Service, repo *analytics.SnapshotRepository, log zerolog.Logger) *SnapshotJob {
	return &SnapshotJob{
		analytics: svc,
		snapshots: repo,
		log:       log.With().Str("job", "portfolio_snapshot").Logger(),
	}
}

// Name returns the job name
func (j *SnapshotJob) Name() string {
	return "portfolio_snapshot"
}

// Run aggregates the full portfolio and stores the result.
func (j *SnapshotJob) Run() error {
	overview, err := j.analytics.Overview(processes.Filter{})
	if err != nil {
		return err
	}

	return j.snapshots.Record(overview, time.Now())
}
