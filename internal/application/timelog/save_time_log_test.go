package timelog

import (
	"context"
	"testing"
	"time"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports/portsfake"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) *portsfake.Store {
	t.Helper()
	ctx := context.Background()
	store := portsfake.New()
	require.NoError(t, store.Users().Create(ctx, &domain.User{ID: "u-1", Email: "ada@example.com", FullName: "Ada"}))
	require.NoError(t, store.Projects().Create(ctx, &domain.Project{ID: "p-1", Name: "Apollo"}))
	require.NoError(t, store.Tasks().Create(ctx, &domain.Task{ID: "t-1", ProjectID: "p-1", Name: "Design"}))
	return store
}

func TestCreateTimeLog_DefaultsToCaller(t *testing.T) {
	ctx := context.Background()
	store := seed(t)
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	created, err := NewCreateTimeLog(store.TimeLogs()).Execute(ctx, &domain.Identity{UserID: "u-1"}, domain.TimeLog{
		TaskID: "t-1", StartTime: start, EndTime: start.Add(150 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", created.UserID)

	logs, err := store.TimeLogs().List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Design", logs[0].TaskName)
	assert.Equal(t, "Ada", logs[0].FullName)
	assert.Equal(t, 2.5, logs[0].TotalHours())
}

func TestCreateTimeLog_Rejects(t *testing.T) {
	ctx := context.Background()
	store := seed(t)
	uc := NewCreateTimeLog(store.TimeLogs())
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	_, err := uc.Execute(ctx, nil, domain.TimeLog{TaskID: "t-1", UserID: "u-1", StartTime: start, EndTime: start.Add(-time.Hour)})
	assert.ErrorIs(t, err, domerrors.ErrValidation)

	_, err = uc.Execute(ctx, nil, domain.TimeLog{TaskID: "nope", UserID: "u-1", StartTime: start, EndTime: start})
	assert.ErrorIs(t, err, domerrors.ErrValidation)

	_, err = uc.Execute(ctx, nil, domain.TimeLog{TaskID: "t-1", StartTime: start, EndTime: start})
	assert.ErrorIs(t, err, domerrors.ErrValidation)
}

func TestUpdateTimeLog(t *testing.T) {
	ctx := context.Background()
	store := seed(t)
	caller := &domain.Identity{UserID: "u-1"}
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	created, err := NewCreateTimeLog(store.TimeLogs()).Execute(ctx, caller, domain.TimeLog{TaskID: "t-1", StartTime: start, EndTime: start.Add(time.Hour)})
	require.NoError(t, err)

	uc := NewUpdateTimeLog(store.TimeLogs())
	require.NoError(t, uc.Execute(ctx, caller, domain.TimeLog{ID: created.ID, TaskID: "t-1", StartTime: start, EndTime: start.Add(3 * time.Hour)}))

	logs, err := store.TimeLogs().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.0, logs[0].TotalHours())

	err = uc.Execute(ctx, caller, domain.TimeLog{ID: "missing", TaskID: "t-1", StartTime: start, EndTime: start})
	assert.ErrorIs(t, err, domerrors.ErrNotFound)
}
