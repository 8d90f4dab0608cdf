package db

import (
	"context"
)

const listClients = `-- name: ListClients :many
SELECT id, name FROM clients ORDER BY name, id
`

func (q *Queries) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := q.db.Query(ctx, listClients)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Client{}
	for rows.Next() {
		var i Client
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createClient = `-- name: CreateClient :exec
INSERT INTO clients (id, name) VALUES ($1, $2)
`

func (q *Queries) CreateClient(ctx context.Context, arg Client) error {
	_, err := q.db.Exec(ctx, createClient, arg.ID, arg.Name)
	return err
}

const updateClient = `-- name: UpdateClient :execrows
UPDATE clients SET name = $2 WHERE id = $1
`

func (q *Queries) UpdateClient(ctx context.Context, arg Client) (int64, error) {
	result, err := q.db.Exec(ctx, updateClient, arg.ID, arg.Name)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteClient = `-- name: DeleteClient :execrows
DELETE FROM clients WHERE id = $1
`

func (q *Queries) DeleteClient(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteClient, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countProjectsByClient = `-- name: CountProjectsByClient :one
SELECT count(*) FROM projects WHERE client_id = $1
`

func (q *Queries) CountProjectsByClient(ctx context.Context, clientID string) (int64, error) {
	row := q.db.QueryRow(ctx, countProjectsByClient, clientID)
	var count int64
	err := row.Scan(&count)
	return count, err
}
