package dto

type SubtaskItem struct {
	ID        uint64 `json:"id"`
	TaskID    uint64 `json:"task_id"`
	Status    int    `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateSubtaskRequest struct {
	Status *int `json:"status" binding:"required,oneof=0 1"`
}

type UpdateSubtaskRequest struct {
	Status *int `json:"status" binding:"omitempty,oneof=0 1"`
}
