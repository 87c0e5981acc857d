package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
)

type SubtaskService struct {
	subtaskRepository ports.SubtaskRepository
	taskRepository    ports.TaskRepository
}

var _ ports.SubtaskService = (*SubtaskService)(nil)

func NewSubtaskService(subtaskRepository ports.SubtaskRepository, taskRepository ports.TaskRepository) *SubtaskService {
	return &SubtaskService{
		subtaskRepository: subtaskRepository,
		taskRepository:    taskRepository,
	}
}

func (s *SubtaskService) CreateSubtask(ctx context.Context, userID, taskID uint64, status int) (*domain.Subtask, error) {
	task, err := s.taskRepository.FindLive(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}

	now := time.Now()
	subtask := &domain.Subtask{
		TaskID:    taskID,
		UserID:    userID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.subtaskRepository.Create(ctx, subtask); err != nil {
		return nil, err
	}

	s.recomputeParent(ctx, taskID)
	return subtask, nil
}

func (s *SubtaskService) ListSubtasks(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Subtask, error) {
	return s.subtaskRepository.ListByUser(ctx, userID, taskID)
}

func (s *SubtaskService) UpdateSubtask(ctx context.Context, userID, subtaskID uint64, status int) (*domain.Subtask, error) {
	subtask, err := s.findOwnedSubtask(ctx, userID, subtaskID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.subtaskRepository.UpdateStatus(ctx, subtaskID, status, now); err != nil {
		return nil, err
	}
	subtask.Status = status
	subtask.UpdatedAt = now

	s.recomputeParent(ctx, subtask.TaskID)
	return subtask, nil
}

func (s *SubtaskService) DeleteSubtask(ctx context.Context, userID, subtaskID uint64) error {
	subtask, err := s.findOwnedSubtask(ctx, userID, subtaskID)
	if err != nil {
		return err
	}

	if err := s.subtaskRepository.SoftDelete(ctx, subtaskID, time.Now()); err != nil {
		return err
	}

	// Recompute after the delete committed so the aggregation observes
	// the subtask as excluded.
	s.recomputeParent(ctx, subtask.TaskID)
	return nil
}

func (s *SubtaskService) findOwnedSubtask(ctx context.Context, userID, subtaskID uint64) (*domain.Subtask, error) {
	subtask, err := s.subtaskRepository.FindLive(ctx, subtaskID)
	if err != nil {
		return nil, err
	}
	if subtask.UserID != userID {
		return nil, domain.ErrSubtaskNotFound
	}
	return subtask, nil
}

// recomputeParent is best effort: the subtask write already committed, so
// a failure here is logged rather than surfaced. A stale status lasts only
// until the next subtask mutation on the same task re-derives it.
func (s *SubtaskService) recomputeParent(ctx context.Context, taskID uint64) {
	if _, err := s.taskRepository.RecomputeStatus(ctx, taskID); err != nil {
		zap.L().Warn("failed to recompute task status",
			zap.Uint64("task_id", taskID), zap.Error(err))
	}
}
