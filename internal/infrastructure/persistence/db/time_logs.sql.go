package db

import (
	"context"
	"time"
)

const listTimeLogs = `-- name: ListTimeLogs :many
SELECT tl.id, tl.task_id, t.name AS task_name, tl.user_id, u.full_name, tl.start_time, tl.end_time
FROM time_logs tl
JOIN tasks t ON t.id = tl.task_id
JOIN users u ON u.id = tl.user_id
ORDER BY tl.start_time DESC, tl.id
`

type ListTimeLogsRow struct {
	ID        string
	TaskID    string
	TaskName  string
	UserID    string
	FullName  string
	StartTime time.Time
	EndTime   time.Time
}

func (q *Queries) ListTimeLogs(ctx context.Context) ([]ListTimeLogsRow, error) {
	rows, err := q.db.Query(ctx, listTimeLogs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []ListTimeLogsRow{}
	for rows.Next() {
		var i ListTimeLogsRow
		if err := rows.Scan(
			&i.ID,
			&i.TaskID,
			&i.TaskName,
			&i.UserID,
			&i.FullName,
			&i.StartTime,
			&i.EndTime,
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

const createTimeLog = `-- name: CreateTimeLog :exec
INSERT INTO time_logs (id, task_id, user_id, start_time, end_time) VALUES ($1, $2, $3, $4, $5)
`

func (q *Queries) CreateTimeLog(ctx context.Context, arg TimeLog) error {
	_, err := q.db.Exec(ctx, createTimeLog, arg.ID, arg.TaskID, arg.UserID, arg.StartTime, arg.EndTime)
	return err
}

const updateTimeLog = `-- name: UpdateTimeLog :execrows
UPDATE time_logs SET task_id = $2, user_id = $3, start_time = $4, end_time = $5 WHERE id = $1
`

func (q *Queries) UpdateTimeLog(ctx context.Context, arg TimeLog) (int64, error) {
	result, err := q.db.Exec(ctx, updateTimeLog, arg.ID, arg.TaskID, arg.UserID, arg.StartTime, arg.EndTime)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteTimeLog = `-- name: DeleteTimeLog :execrows
DELETE FROM time_logs WHERE id = $1
`

func (q *Queries) DeleteTimeLog(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteTimeLog, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
