package domain

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          uint64
	UserID      uint64
	Title       string
	Description string
	Status      TaskStatus
	Priority    int
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

type CreateTaskInput struct {
	UserID      uint64
	Title       string
	Description string
	DueDate     time.Time
}

type UpdateTaskInput struct {
	DueDate    *time.Time
	DueDateSet bool
	Status     *TaskStatus
	StatusSet  bool
}

// TaskFilter narrows a task listing to one owner's live tasks. Page is
// 1-based; results are ordered by due date ascending.
type TaskFilter struct {
	UserID   uint64
	Priority *int
	DueDate  *time.Time
	Page     int
	Limit    int
}

// OverdueTask is a live, not-done task past its due date joined with the
// owner's contact details for the notification sweep.
type OverdueTask struct {
	TaskID        uint64
	Title         string
	DueDate       time.Time
	UserID        uint64
	PhoneNumber   string
	OwnerPriority int
}
