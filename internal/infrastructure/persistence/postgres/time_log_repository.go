package postgres

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
)

type TimeLogRepository struct {
	q *db.Queries
}

func NewTimeLogRepository(q *db.Queries) *TimeLogRepository {
	return &TimeLogRepository{q: q}
}

func (r *TimeLogRepository) List(ctx context.Context) ([]*domain.TimeLog, error) {
	rows, err := r.q.ListTimeLogs(ctx)
	if err != nil {
		return nil, domerrors.Storage(err)
	}
	logs := make([]*domain.TimeLog, 0, len(rows))
	for _, tl := range rows {
		logs = append(logs, &domain.TimeLog{
			ID:        tl.ID,
			TaskID:    tl.TaskID,
			TaskName:  tl.TaskName,
			UserID:    tl.UserID,
			FullName:  tl.FullName,
			StartTime: tl.StartTime,
			EndTime:   tl.EndTime,
		})
	}
	return logs, nil
}

func (r *TimeLogRepository) Create(ctx context.Context, tl *domain.TimeLog) error {
	return writeErr(r.q.CreateTimeLog(ctx, toDBTimeLog(tl)))
}

func (r *TimeLogRepository) Update(ctx context.Context, tl *domain.TimeLog) error {
	n, err := r.q.UpdateTimeLog(ctx, toDBTimeLog(tl))
	return affected(n, writeErr(err), "time log")
}

func (r *TimeLogRepository) Delete(ctx context.Context, timeLogID string) error {
	n, err := r.q.DeleteTimeLog(ctx, timeLogID)
	return affected(n, deleteErr(err, "time log"), "time log")
}

func toDBTimeLog(tl *domain.TimeLog) db.TimeLog {
	return db.TimeLog{
		ID:        tl.ID,
		TaskID:    tl.TaskID,
		UserID:    tl.UserID,
		StartTime: tl.StartTime,
		EndTime:   tl.EndTime,
	}
}

var _ ports.TimeLogRepository = (*TimeLogRepository)(nil)
