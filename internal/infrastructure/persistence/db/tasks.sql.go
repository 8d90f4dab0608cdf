package db

import (
	"context"
)

const listTasks = `-- name: ListTasks :many
SELECT t.id, t.project_id, p.name AS project_name, t.name, t.description
FROM tasks t
JOIN projects p ON p.id = t.project_id
ORDER BY t.name, t.id
`

type ListTasksRow struct {
	ID          string
	ProjectID   string
	ProjectName string
	Name        string
	Description *string
}

func (q *Queries) ListTasks(ctx context.Context) ([]ListTasksRow, error) {
	rows, err := q.db.Query(ctx, listTasks)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListTasksRow{}
	for rows.Next() {
		var i ListTasksRow
		if err := rows.Scan(
			&i.ID,
			&i.ProjectID,
			&i.ProjectName,
			&i.Name,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createTask = `-- name: CreateTask :exec
INSERT INTO tasks (id, project_id, name, description) VALUES ($1, $2, $3, $4)
`

func (q *Queries) CreateTask(ctx context.Context, arg Task) error {
	_, err := q.db.Exec(ctx, createTask, arg.ID, arg.ProjectID, arg.Name, arg.Description)
	return err
}

const updateTask = `-- name: UpdateTask :execrows
UPDATE tasks SET project_id = $2, name = $3, description = $4 WHERE id = $1
`

func (q *Queries) UpdateTask(ctx context.Context, arg Task) (int64, error) {
	result, err := q.db.Exec(ctx, updateTask, arg.ID, arg.ProjectID, arg.Name, arg.Description)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteTask = `-- name: DeleteTask :execrows
DELETE FROM tasks WHERE id = $1
`

func (q *Queries) DeleteTask(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteTask, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
