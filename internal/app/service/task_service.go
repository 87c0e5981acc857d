package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	now := time.Now()
	task := &domain.Task{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusTodo,
		Priority:    domain.DuePriority(now, input.DueDate),
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, filter)
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (*domain.Task, error) {
	task, err := s.findOwnedTask(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if input.DueDateSet {
		task.DueDate = *input.DueDate
		task.Priority = domain.DuePriority(now, task.DueDate)
	}
	if input.StatusSet {
		// Direct status writes survive only until the next subtask
		// mutation re-derives the status from subtask counts.
		task.Status = *input.Status
	}
	task.UpdatedAt = now

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	if _, err := s.findOwnedTask(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.taskRepository.SoftDelete(ctx, taskID, time.Now()); err != nil {
		return err
	}

	// The deleted task keeps a status consistent with its (now deleted)
	// subtask set for audit history. Best effort: the delete itself has
	// already committed.
	if _, err := s.taskRepository.RecomputeStatus(ctx, taskID); err != nil {
		zap.L().Warn("failed to recompute status after task delete",
			zap.Uint64("task_id", taskID), zap.Error(err))
	}
	return nil
}

func (s *TaskService) findOwnedTask(ctx context.Context, userID, taskID uint64) (*domain.Task, error) {
	task, err := s.taskRepository.FindLive(ctx, taskID)
	if err != nil {
		return nil, err
	}
	// Ownership mismatches read as absence, not as a permission error.
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	return task, nil
}
