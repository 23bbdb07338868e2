package httpadapter

import (
	"encoding/json"
	"net/http"

	"banca-insights/internal/core/domain"
)

// handleGenerateAudience filters the customer table with the posted
// criteria and caches the result under the caller's session. The request
// body is decoded into a domain.AudienceCriteria. Parsing errors produce
// HTTP 400, invalid criteria HTTP 400 with the validation message. On
// success it returns the audience with its statistics as JSON.
func (h *Handler) handleGenerateAudience(w http.ResponseWriter, r *http.Request) {
	var criteria domain.AudienceCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	audience, err := h.svc.GenerateAudience(r.Context(), sessionID(w, r), criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, audience)
}

// handleCurrentAudience returns the session's cached audience. Sessions
// without a generated audience get HTTP 404.
func (h *Handler) handleCurrentAudience(w http.ResponseWriter, r *http.Request) {
	audience, err := h.svc.CurrentAudience(r.Context(), sessionID(w, r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, audience)
}
