package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskcall/internal/adapter/http/dto"
	"taskcall/internal/adapter/http/handlers"
	"taskcall/internal/adapter/http/middleware"
	"taskcall/internal/core/domain"
	"taskcall/pkg/apierrors"
	"taskcall/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (*domain.Task, error) {
	args := m.Called(ctx, input)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (*domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

// authAs replaces AuthMiddleware in handler tests by injecting the caller
// id directly, the way the middleware would after verifying a token.
func authAs(userID uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
	}
}

func newTaskRouter(handler *handlers.TaskHandler, userID uint64) *gin.Engine {
	router := gin.New()
	group := router.Group("/api", middleware.LanguageMiddleware(), authAs(userID))
	group.POST("/tasks", handler.CreateTask)
	group.GET("/tasks", handler.ListTasks)
	group.PATCH("/tasks/:task_id", handler.UpdateTask)
	group.DELETE("/tasks/:task_id", handler.DeleteTask)
	return router
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	dueDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 9, 1, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, domain.CreateTaskInput{
		UserID:      42,
		Title:       "Pay invoices",
		Description: "September batch",
		DueDate:     dueDate,
	}).Return(
		&domain.Task{
			ID:          7,
			UserID:      42,
			Title:       "Pay invoices",
			Description: "September batch",
			Status:      domain.TaskStatusTodo,
			Priority:    3,
			DueDate:     dueDate,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
		nil,
	).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	body := `{"title":"Pay invoices","description":"September batch","due_date":"2026-09-10"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(7), got.ID)
	require.Equal(t, "Pay invoices", got.Title)
	require.Equal(t, "September batch", got.Description)
	require.Equal(t, "TODO", got.Status)
	require.Equal(t, 3, got.Priority)
	require.Equal(t, "2026-09-10", got.DueDate)
	require.Equal(t, "2026-09-01T10:20:30Z", got.CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidPayload(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	body := `{"title":"Pay invoices","description":"September batch","due_date":"10/09/2026"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_ListTasks_FilterPassthrough(t *testing.T) {
	priority := 2
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 9, 1, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, domain.TaskFilter{
		UserID:   42,
		Priority: &priority,
		DueDate:  &dueDate,
		Page:     2,
		Limit:    5,
	}).Return(
		[]domain.Task{
			{
				ID:          11,
				UserID:      42,
				Title:       "Renew domain",
				Description: "taskcall.example",
				Status:      domain.TaskStatusInProgress,
				Priority:    2,
				DueDate:     dueDate,
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			},
		},
		nil,
	).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?priority=2&due_date=2026-09-15&page=2&limit=5", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, uint64(11), got[0].ID)
	require.Equal(t, "IN_PROGRESS", got[0].Status)
	require.Equal(t, "2026-09-15", got[0].DueDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_InvalidPriority(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?priority=9", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, mock.Anything).Return(nil, errors.New("db is down")).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Error fetching the tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_DueDate(t *testing.T) {
	dueDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 9, 1, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(42), uint64(7), domain.UpdateTaskInput{
		DueDate:    &dueDate,
		DueDateSet: true,
	}).Return(
		&domain.Task{
			ID:          7,
			UserID:      42,
			Title:       "Pay invoices",
			Description: "September batch",
			Status:      domain.TaskStatusTodo,
			Priority:    3,
			DueDate:     dueDate,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
		nil,
	).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/7", strings.NewReader(`{"due_date":"2026-09-20"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "2026-09-20", got.DueDate)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_InvalidTaskID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/invalid", strings.NewReader(`{"status":"DONE"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
}

func TestTaskHandler_UpdateTask_EmptyBody(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/7", strings.NewReader(`{}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateTask_NullStatus(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/7", strings.NewReader(`{"status":null}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(42), uint64(999), mock.Anything).
		Return(nil, domain.ErrTaskNotFound).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/999", strings.NewReader(`{"status":"DONE"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(42), uint64(7)).Return(nil).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/7", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task deleted successfully", got["message"])
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(42), uint64(999)).Return(domain.ErrTaskNotFound).Once()
	router := newTaskRouter(handlers.NewTaskHandler(serviceMock), 42)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
