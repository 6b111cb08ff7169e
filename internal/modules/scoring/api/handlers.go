package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/eivindh/rpa-radar/internal/modules/processes"
)

// Handlers provides HTTP handlers for the scoring module
type Handlers struct {
	service *processes.Service
	log     zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(service *processes.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// HandleScorePreview handles POST /api/scoring/preview.
// Runs the full evaluation over the submitted attributes without persisting
// anything, so the dashboard can show live scores while the user types.
func (h *Handlers) HandleScorePreview(w http.ResponseWriter, r *http.Request) {
	var input processes.ProcessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode preview request")
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	evaluation := h.service.Evaluate(input, time.Now())

	h.writeJSON(w, http.StatusOK, evaluation)
}

// writeJSON writes a JSON response
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handlers) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
