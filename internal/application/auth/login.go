package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	SessionToken string
	ExpiresAt    time.Time
	User         *domain.User
}

type Login struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	sessions ports.SessionStore
	ttl      time.Duration
	now      func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// dummyPassword is hashed once so unknown emails still pay for a verify.
const dummyPassword = "timesheet-no-such-user"

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, sessions ports.SessionStore, ttl time.Duration, now func() time.Time) *Login {
	if ttl <= 0 {
		ttl = domain.DefaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Login{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		ttl:      ttl,
		now:      now,
	}
}

func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domerrors.Validation("email and password are required")
	}
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.hasher.Verify(input.Password, uc.unknownUserHash())
		return nil, domerrors.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := newSessionToken()
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	session := &domain.Session{
		TokenHash: HashToken(token),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.ttl),
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return &LoginResult{
		SessionToken: token,
		ExpiresAt:    session.ExpiresAt,
		User:         user,
	}, nil
}

func (uc *Login) unknownUserHash() string {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = uc.hasher.Hash(dummyPassword)
	})
	return uc.dummyHash
}
