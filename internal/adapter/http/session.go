package httpadapter

import (
	"net/http"

	"github.com/google/uuid"
)

// sessionHeader carries the caller's session ID. All mutable state
// (cached audiences, scheduled campaigns) is keyed by it.
const sessionHeader = "X-Session-ID"

// sessionID returns the request's session ID, issuing a fresh one when
// the header is absent. The ID is always echoed on the response so
// clients can pick it up and reuse it.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(sessionHeader, id)
	return id
}
