package store

import (
	"context"
	"time"
)

const countActivity = `-- name: CountActivity :one
SELECT COUNT(*) FROM activity
`

func (q *Queries) CountActivity(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countActivity)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createActivity = `-- name: CreateActivity :one
INSERT INTO activity (kind, level, title, message, created_at)
VALUES (?, ?, ?, ?, ?)
RETURNING id, kind, level, title, message, created_at
`

type CreateActivityParams struct {
	Kind      string    `json:"kind"`
	Level     string    `json:"level"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (q *Queries) CreateActivity(ctx context.Context, arg CreateActivityParams) (Activity, error) {
	row := q.db.QueryRowContext(ctx, createActivity,
		arg.Kind,
		arg.Level,
		arg.Title,
		arg.Message,
		arg.CreatedAt,
	)
	var i Activity
	err := row.Scan(
		&i.ID,
		&i.Kind,
		&i.Level,
		&i.Title,
		&i.Message,
		&i.CreatedAt,
	)
	return i, err
}

const deleteActivityBefore = `-- name: DeleteActivityBefore :execrows
DELETE FROM activity WHERE created_at < ?
`

func (q *Queries) DeleteActivityBefore(ctx context.Context, createdAt time.Time) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteActivityBefore, createdAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const listRecentActivity = `-- name: ListRecentActivity :many
SELECT id, kind, level, title, message, created_at FROM activity
ORDER BY created_at DESC, id DESC
LIMIT ?
`

func (q *Queries) ListRecentActivity(ctx context.Context, limit int64) ([]Activity, error) {
	rows, err := q.db.QueryContext(ctx, listRecentActivity, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Activity
	for rows.Next() {
		var i Activity
		if err := rows.Scan(
			&i.ID,
			&i.Kind,
			&i.Level,
			&i.Title,
			&i.Message,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
