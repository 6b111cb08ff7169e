package analytics

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/modules/processes"
	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
	"github.com/eivindh/rpa-radar/pkg/formulas"
)

// Overview summarizes the (optionally filtered) process portfolio.
type Overview struct {
	ProcessCount       int     `json:"process_count"`
	TotalAnnualSavings float64 `json:"total_annual_savings"`
	TotalAnnualHours   float64 `json:"total_annual_hours"`
	HighPriorityCount  int     `json:"high_priority_count"`

	Departments []GroupSummary `json:"departments"`
	Priorities  []GroupSummary `json:"priorities"`
}

// GroupSummary aggregates one department or priority bucket.
type GroupSummary struct {
	Name              string  `json:"name"`
	ProcessCount      int     `json:"process_count"`
	AnnualSavings     float64 `json:"annual_savings"`
	AnnualHours       float64 `json:"annual_hours"`
	HighPriorityCount int     `json:"high_priority_count"`
}

// ColumnStats is the summary statistics block for one numeric column.
type ColumnStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// CorrelationReport is the correlation matrix plus per-column statistics over
// the score and savings columns.
type CorrelationReport struct {
	Columns []string               `json:"columns"`
	Matrix  [][]float64            `json:"matrix"`
	Stats   map[string]ColumnStats `json:"stats"`
}

// Service computes portfolio aggregates for the dashboard views.
type Service struct {
	repo *processes.Repository
	log  zerolog.Logger
}

// NewService creates a new analytics service
func NewService(repo *processes.Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "analytics").Logger(),
	}
}

// Overview aggregates the portfolio matching the filter.
func (s *Service) Overview(filter processes.Filter) (*Overview, error) {
	list, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}

	ov := &Overview{ProcessCount: len(list)}
	byDepartment := make(map[string]*GroupSummary)
	byPriority := make(map[string]*GroupSummary)

	for _, p := range list {
		ov.TotalAnnualSavings += p.AnnualCostSaving
		ov.TotalAnnualHours += p.AnnualHoursSaved

		high := p.Priority == domain.PriorityHigh
		if high {
			ov.HighPriorityCount++
		}

		accumulate(byDepartment, p.Department, p, high)
		accumulate(byPriority, string(p.Priority), p, high)
	}

	ov.Departments = sortedGroups(byDepartment)
	ov.Priorities = sortedGroups(byPriority)
	return ov, nil
}

// Top returns the highest-scoring processes, best first.
func (s *Service) Top(limit int) ([]processes.Process, error) {
	list, err := s.repo.List(processes.Filter{})
	if err != nil {
		return nil, err
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Composite.Adjusted > list[j].Composite.Adjusted
	})

	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// Correlations builds the Pearson correlation matrix over the portfolio's
// score and savings columns, plus per-column summary statistics.
func (s *Service) Correlations() (*CorrelationReport, error) {
	list, err := s.repo.List(processes.Filter{})
	if err != nil {
		return nil, err
	}

	columns := []string{
		"adjusted_score", "gain_score", "feasibility_score", "strategic_score",
		"monthly_volume", "processing_minutes", "annual_hours_saved", "annual_cost_saving",
	}

	series := make(map[string][]float64, len(columns))
	for _, p := range list {
		series["adjusted_score"] = append(series["adjusted_score"], p.Composite.Adjusted)
		series["gain_score"] = append(series["gain_score"], p.Composite.Gain)
		series["feasibility_score"] = append(series["feasibility_score"], p.Composite.Feasibility)
		series["strategic_score"] = append(series["strategic_score"], p.Composite.Strategic)
		series["monthly_volume"] = append(series["monthly_volume"], float64(p.MonthlyVolume))
		series["processing_minutes"] = append(series["processing_minutes"], float64(p.ProcessingMinutes))
		series["annual_hours_saved"] = append(series["annual_hours_saved"], p.AnnualHoursSaved)
		series["annual_cost_saving"] = append(series["annual_cost_saving"], p.AnnualCostSaving)
	}

	report := &CorrelationReport{
		Columns: columns,
		Matrix:  make([][]float64, len(columns)),
		Stats:   make(map[string]ColumnStats, len(columns)),
	}

	for i, ci := range columns {
		report.Matrix[i] = make([]float64, len(columns))
		for j, cj := range columns {
			if i == j {
				report.Matrix[i][j] = 1
				continue
			}
			report.Matrix[i][j] = formulas.Correlation(series[ci], series[cj])
		}

		min, max := formulas.MinMax(series[ci])
		report.Stats[ci] = ColumnStats{
			Mean:   formulas.Mean(series[ci]),
			StdDev: formulas.StdDev(series[ci]),
			Min:    min,
			Max:    max,
		}
	}

	return report, nil
}

func accumulate(groups map[string]*GroupSummary, key string, p processes.Process, high bool) {
	g, ok := groups[key]
	if !ok {
		g = &GroupSummary{Name: key}
		groups[key] = g
	}
	g.ProcessCount++
	g.AnnualSavings += p.AnnualCostSaving
	g.AnnualHours += p.AnnualHoursSaved
	if high {
		g.HighPriorityCount++
	}
}

func sortedGroups(groups map[string]*GroupSummary) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
