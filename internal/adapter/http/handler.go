package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"banca-insights/internal/core/domain"
	"banca-insights/internal/core/port"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds an AnalyticsUseCase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc    port.AnalyticsUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts an
// AnalyticsUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.AnalyticsUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/overview", h.handleOverview)
		r.Post("/audience/generate", h.handleGenerateAudience)
		r.Get("/audience", h.handleCurrentAudience)
		r.Get("/audience/export", h.handleExportAudience)
		r.Get("/campaigns", h.handleCampaigns)
		r.Get("/campaigns/summary", h.handleCampaignSummary)
		r.Get("/campaigns/ranking", h.handleCampaignRanking)
		r.Get("/campaigns/compare", h.handleCampaignCompare)
		r.Get("/campaigns/distribution", h.handleMetricDistribution)
		r.Post("/execution/schedule", h.handleScheduleCampaign)
		r.Get("/execution/pipeline", h.handlePipeline)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v as the response body. Encoding should rarely
// fail; errors are logged and the response left as is.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors onto HTTP statuses. Validation errors
// surface their message; anything unexpected is logged and reported as
// a generic internal error.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCriteria),
		errors.Is(err, domain.ErrUnknownCampaign),
		errors.Is(err, domain.ErrUnknownMetric),
		errors.Is(err, domain.ErrInvalidSchedule):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNoAudience):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		h.logger.Error("request error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
