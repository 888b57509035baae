// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kakomon-drill/backend/internal/catalog"
	"github.com/kakomon-drill/backend/internal/metrics"
	"github.com/kakomon-drill/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	tracker *service.Tracker
	catalog catalog.Source
	metrics *metrics.Manager
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(t *service.Tracker, c catalog.Source, m *metrics.Manager, logger *slog.Logger) *Handler {
	return &Handler{
		tracker: t,
		catalog: c,
		metrics: m,
		logger:  logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ErrorResponse struct {
	Error string `json:"error" example:"question not found"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// validator is implemented by request bodies that check themselves.
type validator interface {
	Validate() error
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func decodeAndValidate[T validator](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSON(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleCatalogError maps catalog failures to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleCatalogError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, catalog.ErrQuestionNotFound) {
		respondError(w, http.StatusNotFound, "question not found")
		return true
	}
	h.metrics.RecordCatalogError()
	h.logger.Error("catalog error", "error", err)
	if errors.Is(err, catalog.ErrUnavailable) {
		respondError(w, http.StatusServiceUnavailable, "question catalog unavailable")
		return true
	}
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
