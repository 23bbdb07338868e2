package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"banca-insights/internal/core/domain"
	"banca-insights/internal/core/port"
)

// scheduleRequest is the wire form of a schedule call. The execution
// date accepts either a bare date or a full RFC3339 timestamp.
type scheduleRequest struct {
	Name               string `json:"name"`
	ExecutionDate      string `json:"execution_date"`
	Channel            string `json:"channel"`
	Priority           string `json:"priority"`
	UseCurrentAudience bool   `json:"use_current_audience"`
	MessageTemplate    string `json:"message_template"`
}

// handleScheduleCampaign records a simulated campaign execution in the
// caller's session. Parsing errors produce HTTP 400; validation errors
// surface the reason. On success it returns the stored entry as JSON.
func (h *Handler) handleScheduleCampaign(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var execDate time.Time
	if req.ExecutionDate != "" {
		var err error
		execDate, err = time.Parse("2006-01-02", req.ExecutionDate)
		if err != nil {
			execDate, err = time.Parse(time.RFC3339, req.ExecutionDate)
		}
		if err != nil {
			http.Error(w, "invalid 'execution_date'", http.StatusBadRequest)
			return
		}
	}

	scheduled, err := h.svc.ScheduleCampaign(r.Context(), sessionID(w, r), port.ScheduleRequest{
		Name:               req.Name,
		ExecutionDate:      execDate,
		Channel:            domain.Channel(req.Channel),
		Priority:           domain.Priority(req.Priority),
		UseCurrentAudience: req.UseCurrentAudience,
		MessageTemplate:    req.MessageTemplate,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err = json.NewEncoder(w).Encode(scheduled); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handlePipeline returns the execution console summary for the session.
func (h *Handler) handlePipeline(w http.ResponseWriter, r *http.Request) {
	pipeline, err := h.svc.Pipeline(r.Context(), sessionID(w, r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, pipeline)
}
