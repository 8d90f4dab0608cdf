package db

import (
	"context"
	"time"
)

const listProjects = `-- name: ListProjects :many
SELECT p.id, p.client_id, c.name AS client_name, p.name, p.description, p.start_date, p.deadline
FROM projects p
LEFT JOIN clients c ON c.id = p.client_id
ORDER BY p.name, p.id
`

type ProjectRow struct {
	ID          string
	ClientID    *string
	ClientName  *string
	Name        string
	Description *string
	StartDate   *time.Time
	Deadline    *time.Time
}

func (q *Queries) ListProjects(ctx context.Context) ([]ProjectRow, error) {
	rows, err := q.db.Query(ctx, listProjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ProjectRow{}
	for rows.Next() {
		var i ProjectRow
		if err := rows.Scan(
			&i.ID,
			&i.ClientID,
			&i.ClientName,
			&i.Name,
			&i.Description,
			&i.StartDate,
			&i.Deadline,
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

const getProject = `-- name: GetProject :one
SELECT p.id, p.client_id, c.name AS client_name, p.name, p.description, p.start_date, p.deadline
FROM projects p
LEFT JOIN clients c ON c.id = p.client_id
WHERE p.id = $1
`

func (q *Queries) GetProject(ctx context.Context, id string) (ProjectRow, error) {
	row := q.db.QueryRow(ctx, getProject, id)
	var i ProjectRow
	err := row.Scan(
		&i.ID,
		&i.ClientID,
		&i.ClientName,
		&i.Name,
		&i.Description,
		&i.StartDate,
		&i.Deadline,
	)
	return i, err
}

const createProject = `-- name: CreateProject :exec
INSERT INTO projects (id, client_id, name, description, start_date, deadline)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (q *Queries) CreateProject(ctx context.Context, arg Project) error {
	_, err := q.db.Exec(ctx, createProject,
		arg.ID,
		arg.ClientID,
		arg.Name,
		arg.Description,
		arg.StartDate,
		arg.Deadline,
	)
	return err
}

const updateProject = `-- name: UpdateProject :execrows
UPDATE projects
SET client_id = $2, name = $3, description = $4, start_date = $5, deadline = $6
WHERE id = $1
`

func (q *Queries) UpdateProject(ctx context.Context, arg Project) (int64, error) {
	result, err := q.db.Exec(ctx, updateProject,
		arg.ID,
		arg.ClientID,
		arg.Name,
		arg.Description,
		arg.StartDate,
		arg.Deadline,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteProject = `-- name: DeleteProject :execrows
DELETE FROM projects WHERE id = $1
`

func (q *Queries) DeleteProject(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProject, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
