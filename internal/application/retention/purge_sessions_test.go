package retention

import (
	"context"
	"testing"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports/portsfake"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeExpiredSessions(t *testing.T) {
	ctx := context.Background()
	store := portsfake.New()
	require.NoError(t, store.Users().Create(ctx, &domain.User{ID: "u-1", Email: "a@example.com", FullName: "A"}))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for hash, exp := range map[string]time.Time{
		"expired":  now.Add(-time.Minute),
		"boundary": now,
		"live":     now.Add(time.Minute),
	} {
		require.NoError(t, store.Sessions().Create(ctx, &domain.Session{TokenHash: hash, UserID: "u-1", CreatedAt: exp.Add(-time.Hour), ExpiresAt: exp}))
	}

	n, err := PurgeExpiredSessions(ctx, store.Sessions(), now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.Equal(t, 1, store.SessionCount())

	n, err = PurgeExpiredSessions(ctx, store.Sessions(), now)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}
