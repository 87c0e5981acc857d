package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64       `db:"id"`
	UserID      uint64       `db:"user_id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	Status      string       `db:"status"`
	Priority    int          `db:"priority"`
	DueDate     time.Time    `db:"due_date"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   sql.NullTime `db:"deleted_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	const query = `
INSERT INTO tasks (user_id, title, description, status, priority, due_date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`
	result, err := r.db.ExecContext(ctx, query,
		task.UserID,
		task.Title,
		task.Description,
		string(task.Status),
		task.Priority,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = uint64(id)
	return nil
}

func (r *TaskRepository) FindLive(ctx context.Context, taskID uint64) (*domain.Task, error) {
	const query = `
SELECT id, user_id, title, description, status, priority, due_date, created_at, updated_at, deleted_at
FROM tasks
WHERE id = ? AND deleted_at IS NULL
`
	var row taskRow
	if err := r.db.GetContext(ctx, &row, query, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task := mapTaskRowToDomainTask(row)
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT id, user_id, title, description, status, priority, due_date, created_at, updated_at, deleted_at
FROM tasks
WHERE user_id = ? AND deleted_at IS NULL`)
	args := []any{filter.UserID}

	if filter.Priority != nil {
		query.WriteString(" AND priority = ?")
		args = append(args, *filter.Priority)
	}
	if filter.DueDate != nil {
		query.WriteString(" AND due_date = ?")
		args = append(args, *filter.DueDate)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}
	query.WriteString(" ORDER BY due_date ASC LIMIT ? OFFSET ?")
	args = append(args, limit, (page-1)*limit)

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query.String(), args...); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows), nil
}

func (r *TaskRepository) ListLive(ctx context.Context) ([]domain.Task, error) {
	const query = `
SELECT id, user_id, title, description, status, priority, due_date, created_at, updated_at, deleted_at
FROM tasks
WHERE deleted_at IS NULL
ORDER BY id
`
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return mapTaskRowsToDomainTasks(rows), nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	const query = `
UPDATE tasks
SET due_date = ?, status = ?, priority = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL
`
	result, err := r.db.ExecContext(ctx, query,
		task.DueDate,
		string(task.Status),
		task.Priority,
		task.UpdatedAt,
		task.ID,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) UpdatePriority(ctx context.Context, taskID uint64, priority int, updatedAt time.Time) error {
	const query = `
UPDATE tasks
SET priority = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL
`
	_, err := r.db.ExecContext(ctx, query, priority, updatedAt, taskID)
	return err
}

// SoftDelete marks the task deleted and cascades to its live subtasks.
// Both writes commit together, so a listing never observes a deleted task
// with live subtasks.
func (r *TaskRepository) SoftDelete(ctx context.Context, taskID uint64, deletedAt time.Time) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	const deleteTaskQuery = `
UPDATE tasks
SET deleted_at = ?, updated_at = ?
WHERE id = ? AND deleted_at IS NULL
`
	result, err := tx.ExecContext(ctx, deleteTaskQuery, deletedAt, deletedAt, taskID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	const deleteSubtasksQuery = `
UPDATE subtasks
SET deleted_at = ?, updated_at = ?
WHERE task_id = ? AND deleted_at IS NULL
`
	if _, err := tx.ExecContext(ctx, deleteSubtasksQuery, deletedAt, deletedAt, taskID); err != nil {
		return err
	}

	return tx.Commit()
}

// RecomputeStatus derives the task status from its live subtask counts.
// The SELECT ... FOR UPDATE on the task row serializes concurrent
// recomputations for the same task: each run counts a committed snapshot
// and writes a status matching exactly the counts it read.
func (r *TaskRepository) RecomputeStatus(ctx context.Context, taskID uint64) (domain.TaskStatus, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	const lockTaskQuery = `
SELECT id FROM tasks WHERE id = ? FOR UPDATE
`
	var lockedID uint64
	if err := tx.GetContext(ctx, &lockedID, lockTaskQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrTaskNotFound
		}
		return "", err
	}

	const countsQuery = `
SELECT COUNT(*)                     AS total,
       COALESCE(SUM(status = 1), 0) AS complete,
       COALESCE(SUM(status = 0), 0) AS incomplete
FROM subtasks
WHERE task_id = ? AND deleted_at IS NULL
`
	var counts struct {
		Total      int `db:"total"`
		Complete   int `db:"complete"`
		Incomplete int `db:"incomplete"`
	}
	if err := tx.GetContext(ctx, &counts, countsQuery, taskID); err != nil {
		return "", err
	}

	status := domain.AggregateStatus(domain.SubtaskCounts{
		Total:      counts.Total,
		Complete:   counts.Complete,
		Incomplete: counts.Incomplete,
	})

	const updateStatusQuery = `
UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?
`
	if _, err := tx.ExecContext(ctx, updateStatusQuery, string(status), time.Now(), taskID); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return status, nil
}

const listOverdueQuery = `
SELECT t.id           AS task_id,
       t.title        AS title,
       t.due_date     AS due_date,
       u.id           AS user_id,
       u.phone_number AS phone_number,
       u.priority     AS owner_priority
FROM tasks t
JOIN users u ON u.id = t.user_id AND u.deleted_at IS NULL
WHERE t.deleted_at IS NULL
  AND t.status <> 'DONE'
  AND t.due_date < ?
ORDER BY u.priority ASC, t.due_date ASC
`

type overdueRow struct {
	TaskID        uint64    `db:"task_id"`
	Title         string    `db:"title"`
	DueDate       time.Time `db:"due_date"`
	UserID        uint64    `db:"user_id"`
	PhoneNumber   string    `db:"phone_number"`
	OwnerPriority int       `db:"owner_priority"`
}

func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.OverdueTask, error) {
	var rows []overdueRow
	if err := r.db.SelectContext(ctx, &rows, listOverdueQuery, now); err != nil {
		return nil, err
	}

	overdue := make([]domain.OverdueTask, 0, len(rows))
	for _, row := range rows {
		overdue = append(overdue, domain.OverdueTask{
			TaskID:        row.TaskID,
			Title:         row.Title,
			DueDate:       row.DueDate,
			UserID:        row.UserID,
			PhoneNumber:   row.PhoneNumber,
			OwnerPriority: row.OwnerPriority,
		})
	}
	return overdue, nil
}

func mapTaskRowsToDomainTasks(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    row.Priority,
		DueDate:     row.DueDate,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.DeletedAt.Valid {
		value := row.DeletedAt.Time
		task.DeletedAt = &value
	}

	return task
}
