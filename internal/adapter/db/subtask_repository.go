package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
)

type SubtaskRepository struct {
	db *sqlx.DB
}

type subtaskRow struct {
	ID        uint64       `db:"id"`
	TaskID    uint64       `db:"task_id"`
	UserID    uint64       `db:"user_id"`
	Status    int          `db:"status"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
	DeletedAt sql.NullTime `db:"deleted_at"`
}

var _ ports.SubtaskRepository = (*SubtaskRepository)(nil)

func NewSubtaskRepository(db *sqlx.DB) *SubtaskRepository {
	return &SubtaskRepository{db: db}
}

func (r *SubtaskRepository) Create(ctx context.Context, subtask *domain.Subtask) error {
	const query = `
INSERT INTO subtasks (task_id, user_id, status, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
`
	result, err := r.db.ExecContext(ctx, query,
		subtask.TaskID,
		subtask.UserID,
		subtask.Status,
		subtask.CreatedAt,
		subtask.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	subtask.ID = uint64(id)
	return nil
}

func (r *SubtaskRepository) FindLive(ctx context.Context, subtaskID uint64) (*domain.Subtask, error) {
	const query = `
SELECT id, task_id, user_id, status, created_at, updated_at, deleted_at
FROM subtasks
WHERE id = ? AND deleted_at IS NULL
`
	var row subtaskRow
	if err := r.db.GetContext(ctx, &row, query, subtaskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSubtaskNotFound
		}
		return nil, err
	}

	subtask := mapSubtaskRowToDomainSubtask(row)
	return &subtask, nil
}

func (r *SubtaskRepository) ListByUser(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Subtask, error) {
	query := `
SELECT id, task_id, user_id, status, created_at, updated_at, deleted_at
FROM subtasks
WHERE user_id = ? AND deleted_at IS NULL`
	args := []any{userID}

	if taskID != nil {
		query += " AND task_id = ?"
		args = append(args, *taskID)
	}
	query += " ORDER BY id"

	var rows []subtaskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	subtasks := make([]domain.Subtask, 0, len(rows))
	for _, row := range rows {
		subtasks = append(subtasks, mapSubtaskRowToDomainSubtask(row))
	}
	return subtasks, nil
}

func (r *SubtaskRepository) UpdateStatus(ctx context.Context, subtaskID uint64, status int, updatedAt time.Time) error {
	const query = `
UPDATE subtasks
SET status = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL
`
	result, err := r.db.ExecContext(ctx, query, status, updatedAt, subtaskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubtaskNotFound
	}
	return nil
}

func (r *SubtaskRepository) SoftDelete(ctx context.Context, subtaskID uint64, deletedAt time.Time) error {
	const query = `
UPDATE subtasks
SET deleted_at = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL
`
	result, err := r.db.ExecContext(ctx, query, deletedAt, deletedAt, subtaskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrSubtaskNotFound
	}
	return nil
}

func mapSubtaskRowToDomainSubtask(row subtaskRow) domain.Subtask {
	subtask := domain.Subtask{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Status:    row.Status,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.DeletedAt.Valid {
		value := row.DeletedAt.Time
		subtask.DeletedAt = &value
	}

	return subtask
}
