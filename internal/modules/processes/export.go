package processes

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// csvHeader lists the exported columns in a stable order.
var csvHeader = []string{
	"id", "name", "owner", "department", "priority",
	"adjusted_score", "gain_score", "feasibility_score", "strategic_score",
	"monthly_volume", "processing_minutes", "error_rate",
	"annual_hours_saved", "annual_cost_saving",
	"realistic_annual_savings", "roi_percent", "payback_months", "npv",
	"registered_at",
}

// HandleExportCSV handles GET /api/processes/export. The same filters as the
// list endpoint apply, so a filtered dashboard view exports exactly what it
// shows.
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	result, err := h.repo.List(filterFromQuery(r))
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	filename := fmt.Sprintf("processes_%s.csv", time.Now().Format("20060102_1504"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		h.log.Error().Err(err).Msg("Failed to write CSV header")
		return
	}

	for _, p := range result {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Owner,
			p.Department,
			string(p.Priority),
			formatNum(p.Composite.Adjusted),
			formatNum(p.Composite.Gain),
			formatNum(p.Composite.Feasibility),
			formatNum(p.Composite.Strategic),
			strconv.Itoa(p.MonthlyVolume),
			strconv.Itoa(p.ProcessingMinutes),
			formatNum(p.ErrorRatePercent),
			formatNum(p.AnnualHoursSaved),
			formatNum(p.AnnualCostSaving),
			formatNum(p.RealisticAnnualSavings),
			formatNum(p.ROIPercent),
			formatNum(p.PaybackMonths),
			formatNum(p.NPV),
			p.RegisteredAt,
		}
		if err := writer.Write(record); err != nil {
			h.log.Error().Err(err).Int64("id", p.ID).Msg("Failed to write CSV row")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		h.log.Error().Err(err).Msg("Failed to flush CSV export")
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
