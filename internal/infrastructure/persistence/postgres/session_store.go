package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
	"github.com/jackc/pgx/v5"
)

type SessionStore struct {
	q *db.Queries
}

func NewSessionStore(q *db.Queries) *SessionStore {
	return &SessionStore{q: q}
}

func (s *SessionStore) Create(ctx context.Context, session *domain.Session) error {
	return writeErr(s.q.CreateSession(ctx, db.CreateSessionParams{
		TokenHash: session.TokenHash,
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}))
}

func (s *SessionStore) FindValid(ctx context.Context, tokenHash string, now time.Time) (*domain.Identity, error) {
	row, err := s.q.GetValidSession(ctx, db.GetValidSessionParams{TokenHash: tokenHash, Now: now})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domerrors.Storage(err)
	}
	return &domain.Identity{
		UserID:      row.UserID,
		DisplayName: row.FullName,
		ExpiresAt:   row.ExpiresAt,
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, tokenHash string) error {
	n, err := s.q.DeleteSession(ctx, tokenHash)
	if err != nil {
		return domerrors.Storage(err)
	}
	return affected(n, nil, "session")
}

func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.q.DeleteExpiredSessions(ctx, now)
	if err != nil {
		return 0, domerrors.Storage(err)
	}
	return n, nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
