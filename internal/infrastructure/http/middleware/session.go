package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/rs/zerolog"
)

// SessionHeader carries the opaque session token on every request.
const SessionHeader = "X-Session-ID"

// Authenticator resolves a raw session token to its owner.
type Authenticator interface {
	Execute(ctx context.Context, token string) (*domain.Identity, error)
}

// SessionGuard rejects requests without a live session and stores the
// caller's identity in the request context (see IdentityFromContext).
type SessionGuard struct {
	auth Authenticator
	log  zerolog.Logger
}

func NewSessionGuard(auth Authenticator, log zerolog.Logger) *SessionGuard {
	return &SessionGuard{auth: auth, log: log}
}

func (g *SessionGuard) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := g.auth.Execute(r.Context(), r.Header.Get(SessionHeader))
		switch {
		case err == nil:
			RecordAuthEvent("guard", true)
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		case errors.Is(err, domerrors.ErrMissingCredential), errors.Is(err, domerrors.ErrUnauthenticated):
			RecordAuthEvent("guard", false)
			g.log.Debug().Str("path", r.URL.Path).Msg(err.Error())
			writeErr(w, http.StatusUnauthorized, "unauthorized", err.Error())
		default:
			g.log.Error().Err(err).Str("path", r.URL.Path).Msg("session lookup failed")
			writeErr(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
	})
}

func writeErr(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": errCode})
}
