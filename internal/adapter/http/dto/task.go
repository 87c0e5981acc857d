package dto

type TaskItem struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
	DueDate     string `json:"due_date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required,max=65535"`
	DueDate     string `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	DueDate *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Status  *string `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}
