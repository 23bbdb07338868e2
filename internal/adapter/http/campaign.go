package httpadapter

import "net/http"

// handleCampaigns lists the fixed campaign enumeration.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.Campaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, names)
}

// handleCampaignSummary aggregates one campaign's twelve monthly rows.
// The campaign is selected with the `campaign` query parameter; names
// contain spaces, so a query parameter is used instead of a path
// segment. Missing or unknown names produce HTTP 400.
func (h *Handler) handleCampaignSummary(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("campaign")
	if name == "" {
		http.Error(w, "missing 'campaign' parameter", http.StatusBadRequest)
		return
	}
	summary, err := h.svc.CampaignSummary(r.Context(), name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, summary)
}

// handleCampaignRanking orders campaigns by mean conversion rate.
func (h *Handler) handleCampaignRanking(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.svc.RankCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, ranks)
}

// handleCampaignCompare orders campaigns by the mean of the metric named
// in the `metric` query parameter. Unknown metrics produce HTTP 400.
func (h *Handler) handleCampaignCompare(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		http.Error(w, "missing 'metric' parameter", http.StatusBadRequest)
		return
	}
	ranks, err := h.svc.CompareCampaigns(r.Context(), metric)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, ranks)
}

// handleMetricDistribution returns each campaign's monthly values for
// the metric named in the `metric` query parameter, with five-number
// summaries for box-plot rendering.
func (h *Handler) handleMetricDistribution(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		http.Error(w, "missing 'metric' parameter", http.StatusBadRequest)
		return
	}
	dists, err := h.svc.MetricDistributions(r.Context(), metric)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, dists)
}
