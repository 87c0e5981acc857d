package ports

import (
	"context"
	"time"

	"taskcall/internal/core/domain"
)

type SubtaskRepository interface {
	Create(ctx context.Context, subtask *domain.Subtask) error
	FindLive(ctx context.Context, subtaskID uint64) (*domain.Subtask, error)
	ListByUser(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Subtask, error)
	UpdateStatus(ctx context.Context, subtaskID uint64, status int, updatedAt time.Time) error
	SoftDelete(ctx context.Context, subtaskID uint64, deletedAt time.Time) error
}

type SubtaskService interface {
	CreateSubtask(ctx context.Context, userID, taskID uint64, status int) (*domain.Subtask, error)
	ListSubtasks(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Subtask, error)
	UpdateSubtask(ctx context.Context, userID, subtaskID uint64, status int) (*domain.Subtask, error)
	DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error
}
