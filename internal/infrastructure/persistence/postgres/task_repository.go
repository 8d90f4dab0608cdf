package postgres

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/application/ports"
	"github.com/amirhosseinghanipour/timesheet/internal/domain"
	domerrors "github.com/amirhosseinghanipour/timesheet/internal/domain/errors"
	"github.com/amirhosseinghanipour/timesheet/internal/infrastructure/persistence/db"
)

type TaskRepository struct {
	q *db.Queries
}

func NewTaskRepository(q *db.Queries) *TaskRepository {
	return &TaskRepository{q: q}
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.q.ListTasks(ctx)
	if err != nil {
		return nil, domerrors.Storage(err)
	}
	tasks := make([]*domain.Task, 0, len(rows))
	for _, t := range rows {
		tasks = append(tasks, &domain.Task{
			ID:          t.ID,
			ProjectID:   t.ProjectID,
			ProjectName: t.ProjectName,
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return writeErr(r.q.CreateTask(ctx, db.Task{ID: task.ID, ProjectID: task.ProjectID, Name: task.Name, Description: task.Description}))
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	n, err := r.q.UpdateTask(ctx, db.Task{ID: task.ID, ProjectID: task.ProjectID, Name: task.Name, Description: task.Description})
	return affected(n, writeErr(err), "task")
}

func (r *TaskRepository) Delete(ctx context.Context, taskID string) error {
	n, err := r.q.DeleteTask(ctx, taskID)
	return affected(n, deleteErr(err, "task"), "task")
}

var _ ports.TaskRepository = (*TaskRepository)(nil)
