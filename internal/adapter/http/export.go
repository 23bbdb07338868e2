package httpadapter

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"log/slog"
)

// handleExportAudience serializes the session's cached audience to CSV.
// The body is buffered first so a missing audience can still produce a
// clean HTTP 404 instead of a truncated download. The attachment is
// named campaign_audience_YYYYMMDD.csv after the current date.
func (h *Handler) handleExportAudience(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.svc.ExportAudience(r.Context(), sessionID(w, r), &buf); err != nil {
		h.writeError(w, err)
		return
	}

	filename := fmt.Sprintf("campaign_audience_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("write export error", slog.Any("error", err))
	}
}
