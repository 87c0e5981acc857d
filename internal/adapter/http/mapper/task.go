package mapper

import (
	"time"

	"taskcall/internal/adapter/http/dto"
	"taskcall/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	return dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    task.Priority,
		DueDate:     task.DueDate.Format("2006-01-02"),
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSubtaskItems(subtasks []domain.Subtask) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, ToSubtaskItem(subtask))
	}
	return items
}

func ToSubtaskItem(subtask domain.Subtask) dto.SubtaskItem {
	return dto.SubtaskItem{
		ID:        subtask.ID,
		TaskID:    subtask.TaskID,
		Status:    subtask.Status,
		CreatedAt: subtask.CreatedAt.Format(time.RFC3339),
		UpdatedAt: subtask.UpdatedAt.Format(time.RFC3339),
	}
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Priority:    user.Priority,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
	}
}
