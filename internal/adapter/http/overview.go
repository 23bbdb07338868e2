package httpadapter

import "net/http"

// handleOverview returns the dashboard KPI block: customer and revenue
// totals plus the income, region and campaign distributions. On success
// it writes a JSON representation of the overview.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, ov)
}
