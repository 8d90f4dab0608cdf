package db

import (
	"context"
)

const listTeams = `-- name: ListTeams :many
SELECT t.id, t.name, t.description,
	COALESCE(array_agg(u.full_name ORDER BY u.full_name, u.id) FILTER (WHERE u.id IS NOT NULL), '{}')::text[] AS members,
	COALESCE(array_agg(u.id ORDER BY u.full_name, u.id) FILTER (WHERE u.id IS NOT NULL), '{}')::text[] AS member_ids
FROM teams t
LEFT JOIN team_members tm ON tm.team_id = t.id
LEFT JOIN users u ON u.id = tm.user_id
GROUP BY t.id, t.name, t.description
ORDER BY t.name, t.id
`

type ListTeamsRow struct {
	ID          string
	Name        string
	Description *string
	Members     []string
	MemberIds   []string
}

func (q *Queries) ListTeams(ctx context.Context) ([]ListTeamsRow, error) {
	rows, err := q.db.Query(ctx, listTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListTeamsRow{}
	for rows.Next() {
		var i ListTeamsRow
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Description,
			&i.Members,
			&i.MemberIds,
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

const createTeam = `-- name: CreateTeam :exec
INSERT INTO teams (id, name, description) VALUES ($1, $2, $3)
`

func (q *Queries) CreateTeam(ctx context.Context, arg Team) error {
	_, err := q.db.Exec(ctx, createTeam, arg.ID, arg.Name, arg.Description)
	return err
}

const updateTeam = `-- name: UpdateTeam :execrows
UPDATE teams SET name = $2, description = $3 WHERE id = $1
`

func (q *Queries) UpdateTeam(ctx context.Context, arg Team) (int64, error) {
	result, err := q.db.Exec(ctx, updateTeam, arg.ID, arg.Name, arg.Description)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteTeam = `-- name: DeleteTeam :execrows
DELETE FROM teams WHERE id = $1
`

func (q *Queries) DeleteTeam(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteTeam, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const lockTeam = `-- name: LockTeam :one
SELECT id FROM teams WHERE id = $1 FOR UPDATE
`

func (q *Queries) LockTeam(ctx context.Context, id string) (string, error) {
	row := q.db.QueryRow(ctx, lockTeam, id)
	var teamID string
	err := row.Scan(&teamID)
	return teamID, err
}

const addTeamMember = `-- name: AddTeamMember :exec
INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)
`

func (q *Queries) AddTeamMember(ctx context.Context, arg TeamMember) error {
	_, err := q.db.Exec(ctx, addTeamMember, arg.TeamID, arg.UserID)
	return err
}

const removeTeamMember = `-- name: RemoveTeamMember :execrows
DELETE FROM team_members WHERE team_id = $1 AND user_id = $2
`

func (q *Queries) RemoveTeamMember(ctx context.Context, arg TeamMember) (int64, error) {
	result, err := q.db.Exec(ctx, removeTeamMember, arg.TeamID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteTeamMembers = `-- name: DeleteTeamMembers :exec
DELETE FROM team_members WHERE team_id = $1
`

func (q *Queries) DeleteTeamMembers(ctx context.Context, teamID string) error {
	_, err := q.db.Exec(ctx, deleteTeamMembers, teamID)
	return err
}
