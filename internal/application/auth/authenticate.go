package auth

import (
	"context"
	"strings"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

// Authenticate resolves a raw session token to the identity that owns it.
// Used by the session guard and the session-check endpoint.
type Authenticate struct {
	sessions ports.SessionStore
	now      func() time.Time
}

func NewAuthenticate(sessions ports.SessionStore, now func() time.Time) *Authenticate {
	if now == nil {
		now = time.Now
	}
	return &Authenticate{sessions: sessions, now: now}
}

// Execute returns ErrMissingCredential for a blank token and ErrUnauthenticated
// when no unexpired session matches.
func (uc *Authenticate) Execute(ctx context.Context, token string) (*domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domerrors.ErrMissingCredential
	}
	identity, err := uc.sessions.FindValid(ctx, HashToken(token), uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, domerrors.ErrUnauthenticated
	}
	return identity, nil
}
