package timelog

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	"github.com/google/uuid"
)

// CreateTimeLog records time against a task. A blank UserID means the caller.
type CreateTimeLog struct {
	logs ports.TimeLogRepository
}

func NewCreateTimeLog(logs ports.TimeLogRepository) *CreateTimeLog {
	return &CreateTimeLog{logs: logs}
}

func (uc *CreateTimeLog) Execute(ctx context.Context, caller *domain.Identity, tl domain.TimeLog) (*domain.TimeLog, error) {
	if tl.UserID == "" && caller != nil {
		tl.UserID = caller.UserID
	}
	if err := tl.Validate(); err != nil {
		return nil, err
	}
	tl.ID = uuid.NewString()
	if err := uc.logs.Create(ctx, &tl); err != nil {
		return nil, err
	}
	return &tl, nil
}

// UpdateTimeLog replaces an existing entry. A blank UserID means the caller.
type UpdateTimeLog struct {
	logs ports.TimeLogRepository
}

func NewUpdateTimeLog(logs ports.TimeLogRepository) *UpdateTimeLog {
	return &UpdateTimeLog{logs: logs}
}

func (uc *UpdateTimeLog) Execute(ctx context.Context, caller *domain.Identity, tl domain.TimeLog) error {
	if tl.UserID == "" && caller != nil {
		tl.UserID = caller.UserID
	}
	if err := tl.Validate(); err != nil {
		return err
	}
	return uc.logs.Update(ctx, &tl)
}
