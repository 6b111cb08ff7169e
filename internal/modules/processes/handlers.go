package processes

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/modules/scoring/domain"
)

// Handler handles process HTTP requests
type Handler struct {
	service *Service
	repo    *Repository
	log     zerolog.Logger
}

// NewHandler creates a new process handler
func NewHandler(service *Service, repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		repo:    repo,
		log:     log.With().Str("handler", "processes").Logger(),
	}
}

// Routes mounts the process endpoints
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/export", h.HandleExportCSV)
	r.Get("/departments", h.HandleDepartments)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
}

// HandleCreate handles POST /api/processes
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input ProcessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode process input")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, missing, err := h.service.Register(input, time.Now())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(missing) > 0 {
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":          "missing required fields",
			"missing_fields": missing,
		})
		return
	}

	h.writeJSON(w, http.StatusCreated, p)
}

// HandleUpdate handles PUT /api/processes/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var input ProcessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, missing, err := h.service.Replace(id, input, time.Now())
	if errors.Is(err, sql.ErrNoRows) {
		h.writeError(w, http.StatusNotFound, "Process not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(missing) > 0 {
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":          "missing required fields",
			"missing_fields": missing,
		})
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /api/processes/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	err := h.repo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		h.writeError(w, http.StatusNotFound, "Process not found")
		return
	}
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{"deleted": id})
}

// HandleGet handles GET /api/processes/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	p, err := h.repo.GetByID(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		h.writeError(w, http.StatusNotFound, "Process not found")
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// HandleList handles GET /api/processes with optional filters:
// ?department=...&priority=...&min_score=...
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	result, err := h.repo.List(filter)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if result == nil {
		result = []Process{}
	}
	h.writeJSON(w, http.StatusOK, result)
}

// HandleDepartments handles GET /api/processes/departments
func (h *Handler) HandleDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.repo.DistinctDepartments()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if departments == nil {
		departments = []string{}
	}
	h.writeJSON(w, http.StatusOK, departments)
}

func filterFromQuery(r *http.Request) Filter {
	filter := Filter{
		Department: r.URL.Query().Get("department"),
		Priority:   domain.PriorityCategory(r.URL.Query().Get("priority")),
	}
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinScore = v
		}
	}
	return filter
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid process id")
		return 0, false
	}
	return id, true
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
