package domain

import "time"

// Subtask completion status as stored: 0 incomplete, 1 complete.
const (
	SubtaskIncomplete = 0
	SubtaskComplete   = 1
)

type Subtask struct {
	ID        uint64
	TaskID    uint64
	UserID    uint64
	Status    int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// SubtaskCounts summarizes the live subtasks of one task.
type SubtaskCounts struct {
	Total      int
	Complete   int
	Incomplete int
}

// AggregateStatus derives a task's status from its live subtask counts.
// A task with every subtask complete is DONE, a task with at least one
// subtask past the incomplete state is IN_PROGRESS, anything else
// (including zero live subtasks) is TODO.
func AggregateStatus(counts SubtaskCounts) TaskStatus {
	if counts.Total > 0 && counts.Complete == counts.Total {
		return TaskStatusDone
	}
	if counts.Total-counts.Incomplete > 0 {
		return TaskStatusInProgress
	}
	return TaskStatusTodo
}
