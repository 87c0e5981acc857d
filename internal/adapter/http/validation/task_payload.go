package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskcall/internal/adapter/http/dto"
	"taskcall/internal/core/domain"
)

var (
	ErrInvalidTaskPayload    = errors.New("invalid task payload")
	ErrInvalidSubtaskPayload = errors.New("invalid subtask payload")
)

func BuildCreateTaskInput(userID uint64, req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.CreateTaskInput{
		UserID:      userID,
		Title:       title,
		Description: req.Description,
		DueDate:     dueDate,
	}, nil
}

// BuildUpdateTaskInput distinguishes absent PATCH fields from present-but-
// invalid ones via the raw JSON body: a field that was sent but failed to
// bind rejects the request instead of being silently dropped.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasJSONField(raw, "due_date") && !hasJSONField(raw, "status") {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var input domain.UpdateTaskInput

	if hasJSONField(raw, "due_date") {
		if isJSONNull(raw["due_date"]) || req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.DueDate = &dueDate
		input.DueDateSet = true
	}

	if hasJSONField(raw, "status") {
		if isJSONNull(raw["status"]) || req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status := domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Status = &status
		input.StatusSet = true
	}

	return input, nil
}

func SubtaskStatus(status *int) (int, error) {
	if status == nil {
		return 0, ErrInvalidSubtaskPayload
	}
	if *status != domain.SubtaskIncomplete && *status != domain.SubtaskComplete {
		return 0, ErrInvalidSubtaskPayload
	}
	return *status, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
