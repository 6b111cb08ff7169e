package analytics

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/modules/processes"
	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
)

// Handler handles analytics HTTP requests
type Handler struct {
	service   *Service
	snapshots *SnapshotRepository
	log       zerolog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(service *Service, snapshots *SnapshotRepository, log zerolog.Logger) *Handler {
	return &Handler{
		service:   service,
		snapshots: snapshots,
		log:       log.With().Str("handler", "analytics").Logger(),
	}
}

// Routes mounts the analytics endpoints
func (h *Handler) Routes(r chi.Router) {
	r.Get("/overview", h.HandleOverview)
	r.Get("/top", h.HandleTop)
	r.Get("/correlations", h.HandleCorrelations)
	r.Get("/snapshots", h.HandleSnapshots)
}

// HandleOverview handles GET /api/analytics/overview with the same filters as
// the process list.
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	filter := processes.Filter{
		Department: r.URL.Query().Get("department"),
		Priority:   domain.PriorityCategory(r.URL.Query().Get("priority")),
	}
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinScore = v
		}
	}

	overview, err := h.service.Overview(filter)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, overview)
}

// HandleTop handles GET /api/analytics/top?limit=
func (h *Handler) HandleTop(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	top, err := h.service.Top(limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if top == nil {
		top = []processes.Process{}
	}

	h.writeJSON(w, http.StatusOK, top)
}

// HandleCorrelations handles GET /api/analytics/correlations
func (h *Handler) HandleCorrelations(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Correlations()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// HandleSnapshots handles GET /api/analytics/snapshots?limit=
func (h *Handler) HandleSnapshots(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	snapshots, err := h.snapshots.Recent(limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if snapshots == nil {
		snapshots = []Snapshot{}
	}

	h.writeJSON(w, http.StatusOK, snapshots)
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
