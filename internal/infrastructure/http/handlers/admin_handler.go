package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/application/retention"
)

// AdminHandler handles /admin/*. Requires X-Timesheet-Admin-Secret.
type AdminHandler struct {
	sessions ports.SessionStore
	now      func() time.Time
	log      zerolog.Logger
}

// NewAdminHandler creates the admin handler. now defaults to time.Now.
func NewAdminHandler(sessions ports.SessionStore, now func() time.Time, log zerolog.Logger) *AdminHandler {
	if now == nil {
		now = time.Now
	}
	return &AdminHandler{sessions: sessions, now: now, log: log}
}

// PurgeSessions handles POST /admin/sessions/purge. Returns { "purged": n }.
func (h *AdminHandler) PurgeSessions(w http.ResponseWriter, r *http.Request) {
	n, err := retention.PurgeExpiredSessions(r.Context(), h.sessions, h.now())
	if err != nil {
		writeDomainErr(w, h.log, err, "purge sessions")
		return
	}
	h.log.Info().Int64("purged", n).Msg("expired sessions purged")
	writeJSON(w, http.StatusOK, map[string]int64{"purged": n})
}
