package ports

import (
	"context"
	"time"

	"taskcall/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// FindLive returns the task only when it exists and is not soft-deleted.
	FindLive(ctx context.Context, taskID uint64) (*domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	ListLive(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	UpdatePriority(ctx context.Context, taskID uint64, priority int, updatedAt time.Time) error
	// SoftDelete marks the task and all of its live subtasks deleted in a
	// single transaction.
	SoftDelete(ctx context.Context, taskID uint64, deletedAt time.Time) error
	// RecomputeStatus re-derives the task status from its live subtask
	// counts. The read and write happen in one transaction holding a row
	// lock on the task, so concurrent recomputations for the same task
	// serialize and never act on a partial snapshot.
	RecomputeStatus(ctx context.Context, taskID uint64) (domain.TaskStatus, error)
	ListOverdue(ctx context.Context, now time.Time) ([]domain.OverdueTask, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error)
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uint64) error
}
