package auth

import (
	"context"
	"strings"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

// Logout deletes the session row for a token. It does not check expiry, so an
// expired but unpurged session can still be logged out once.
type Logout struct {
	sessions ports.SessionStore
}

func NewLogout(sessions ports.SessionStore) *Logout {
	return &Logout{sessions: sessions}
}

func (uc *Logout) Execute(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domerrors.ErrMissingCredential
	}
	return uc.sessions.Delete(ctx, HashToken(token))
}
