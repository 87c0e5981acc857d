package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"taskcall/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) FindLive(ctx context.Context, taskID uint64) (*domain.Task, error) {
	args := m.Called(ctx, taskID)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListLive(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) UpdatePriority(ctx context.Context, taskID uint64, priority int, updatedAt time.Time) error {
	args := m.Called(ctx, taskID, priority, updatedAt)
	return args.Error(0)
}

func (m *taskRepositoryMock) SoftDelete(ctx context.Context, taskID uint64, deletedAt time.Time) error {
	args := m.Called(ctx, taskID, deletedAt)
	return args.Error(0)
}

func (m *taskRepositoryMock) RecomputeStatus(ctx context.Context, taskID uint64) (domain.TaskStatus, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).(domain.TaskStatus), args.Error(1)
}

func (m *taskRepositoryMock) ListOverdue(ctx context.Context, now time.Time) ([]domain.OverdueTask, error) {
	args := m.Called(ctx, now)

	var overdue []domain.OverdueTask
	if value := args.Get(0); value != nil {
		overdue = value.([]domain.OverdueTask)
	}
	return overdue, args.Error(1)
}

type subtaskRepositoryMock struct {
	mock.Mock
}

func (m *subtaskRepositoryMock) Create(ctx context.Context, subtask *domain.Subtask) error {
	args := m.Called(ctx, subtask)
	return args.Error(0)
}

func (m *subtaskRepositoryMock) FindLive(ctx context.Context, subtaskID uint64) (*domain.Subtask, error) {
	args := m.Called(ctx, subtaskID)

	var subtask *domain.Subtask
	if value := args.Get(0); value != nil {
		subtask = value.(*domain.Subtask)
	}
	return subtask, args.Error(1)
}

func (m *subtaskRepositoryMock) ListByUser(ctx context.Context, userID uint64, taskID *uint64) ([]domain.Subtask, error) {
	args := m.Called(ctx, userID, taskID)

	var subtasks []domain.Subtask
	if value := args.Get(0); value != nil {
		subtasks = value.([]domain.Subtask)
	}
	return subtasks, args.Error(1)
}

func (m *subtaskRepositoryMock) UpdateStatus(ctx context.Context, subtaskID uint64, status int, updatedAt time.Time) error {
	args := m.Called(ctx, subtaskID, status, updatedAt)
	return args.Error(0)
}

func (m *subtaskRepositoryMock) SoftDelete(ctx context.Context, subtaskID uint64, deletedAt time.Time) error {
	args := m.Called(ctx, subtaskID, deletedAt)
	return args.Error(0)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepositoryMock) FindByName(ctx context.Context, name string) (*domain.User, error) {
	args := m.Called(ctx, name)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *userRepositoryMock) FindLive(ctx context.Context, userID uint64) (*domain.User, error) {
	args := m.Called(ctx, userID)

	var user *domain.User
	if value := args.Get(0); value != nil {
		user = value.(*domain.User)
	}
	return user, args.Error(1)
}

type callNotifierMock struct {
	mock.Mock
}

func (m *callNotifierMock) PlaceCall(ctx context.Context, phoneNumber, message string) error {
	args := m.Called(ctx, phoneNumber, message)
	return args.Error(0)
}
