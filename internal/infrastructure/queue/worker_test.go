package queue

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports/portsfake"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeHandler_ProcessTask(t *testing.T) {
	ctx := context.Background()
	store := portsfake.New()
	require.NoError(t, store.Users().Create(ctx, &domain.User{ID: "u-1", Email: "a@example.com", FullName: "A"}))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.Sessions().Create(ctx, &domain.Session{TokenHash: "old", UserID: "u-1", ExpiresAt: now.Add(-time.Second)}))
	require.NoError(t, store.Sessions().Create(ctx, &domain.Session{TokenHash: "new", UserID: "u-1", ExpiresAt: now.Add(time.Hour)}))

	h := NewPurgeHandler(store.Sessions(), func() time.Time { return now }, zerolog.New(io.Discard))
	require.NoError(t, h.ProcessTask(ctx, NewPurgeExpiredSessionsTask()))
	assert.Equal(t, 1, store.SessionCount())
}

func TestPurgeHandler_StorageError(t *testing.T) {
	store := portsfake.New()
	store.Err = errors.New("down")

	h := NewPurgeHandler(store.Sessions(), nil, zerolog.New(io.Discard))
	err := h.ProcessTask(context.Background(), NewPurgeExpiredSessionsTask())
	assert.ErrorIs(t, err, domerrors.ErrStorageUnavailable)
}

func TestNewPurgeExpiredSessionsTask(t *testing.T) {
	task := NewPurgeExpiredSessionsTask()
	assert.Equal(t, TypePurgeExpiredSessions, task.Type())
	assert.Empty(t, task.Payload())
}

func TestNoopEnqueuer(t *testing.T) {
	assert.NoError(t, NewNoopEnqueuer().EnqueuePurgeExpiredSessions(context.Background()))
}
