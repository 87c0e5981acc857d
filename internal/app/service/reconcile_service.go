package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"taskcall/internal/core/domain"
	"taskcall/internal/core/ports"
)

type ReconcileService struct {
	taskRepository ports.TaskRepository
	notifier       ports.CallNotifier
}

var _ ports.ReconcileService = (*ReconcileService)(nil)

func NewReconcileService(taskRepository ports.TaskRepository, notifier ports.CallNotifier) *ReconcileService {
	return &ReconcileService{
		taskRepository: taskRepository,
		notifier:       notifier,
	}
}

// RefreshPriorities recomputes every live task's priority as of now and
// persists the ones that changed. A failing task is logged and skipped so
// one bad row never starves the rest of the batch.
func (s *ReconcileService) RefreshPriorities(ctx context.Context, now time.Time) error {
	tasks, err := s.taskRepository.ListLive(ctx)
	if err != nil {
		return fmt.Errorf("list live tasks: %w", err)
	}

	var updated, failed int
	for _, task := range tasks {
		priority := domain.DuePriority(now, task.DueDate)
		if priority == task.Priority {
			continue
		}

		if err := s.taskRepository.UpdatePriority(ctx, task.ID, priority, now); err != nil {
			failed++
			zap.L().Error("failed to refresh task priority",
				zap.Uint64("task_id", task.ID), zap.Error(err))
			continue
		}
		updated++
	}

	zap.L().Info("priority refresh finished",
		zap.Int("tasks", len(tasks)),
		zap.Int("updated", updated),
		zap.Int("failed", failed))
	return nil
}

// SweepOverdue places one reminder call per phone number per run, most
// urgent owners first. The notified set lives only for this run; a
// re-run after an interruption rebuilds it from current store state.
func (s *ReconcileService) SweepOverdue(ctx context.Context, now time.Time) error {
	overdue, err := s.taskRepository.ListOverdue(ctx, now)
	if err != nil {
		return fmt.Errorf("list overdue tasks: %w", err)
	}

	notified := make(map[string]struct{}, len(overdue))
	var placed, failed int
	for _, task := range overdue {
		if _, done := notified[task.PhoneNumber]; done {
			continue
		}

		message := fmt.Sprintf("Your task %q was due on %s and is still open.",
			task.Title, task.DueDate.Format("2006-01-02"))
		if err := s.notifier.PlaceCall(ctx, task.PhoneNumber, message); err != nil {
			failed++
			zap.L().Error("failed to place reminder call",
				zap.Uint64("task_id", task.TaskID),
				zap.Uint64("user_id", task.UserID),
				zap.Error(err))
			// No inline retry: calling the same number twice is worse
			// than waiting for tomorrow's sweep. Still marked notified
			// so later tasks of the same owner don't trigger a second
			// attempt this run.
		} else {
			placed++
		}
		notified[task.PhoneNumber] = struct{}{}
	}

	zap.L().Info("overdue sweep finished",
		zap.Int("overdue_tasks", len(overdue)),
		zap.Int("calls_placed", placed),
		zap.Int("calls_failed", failed))
	return nil
}
