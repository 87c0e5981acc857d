package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskcall/internal/app/service"
	"taskcall/internal/core/domain"
)

func TestSubtaskService_CreateSubtask_RecomputesParentStatus(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("FindLive", mock.Anything, uint64(5)).Return(&domain.Task{ID: 5, UserID: 7}, nil).Once()
	taskRepo.On("RecomputeStatus", mock.Anything, uint64(5)).Return(domain.TaskStatusTodo, nil).Once()

	subtaskRepo := new(subtaskRepositoryMock)
	subtaskRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Subtask) bool {
		return s.TaskID == 5 && s.UserID == 7 && s.Status == domain.SubtaskIncomplete
	})).Return(nil).Once()

	svc := service.NewSubtaskService(subtaskRepo, taskRepo)
	subtask, err := svc.CreateSubtask(context.Background(), 7, 5, domain.SubtaskIncomplete)
	require.NoError(t, err)
	require.Equal(t, uint64(5), subtask.TaskID)
	taskRepo.AssertExpectations(t)
	subtaskRepo.AssertExpectations(t)
}

func TestSubtaskService_CreateSubtask_ForeignTaskReadsAsMissing(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("FindLive", mock.Anything, uint64(5)).Return(&domain.Task{ID: 5, UserID: 8}, nil).Once()

	svc := service.NewSubtaskService(new(subtaskRepositoryMock), taskRepo)
	_, err := svc.CreateSubtask(context.Background(), 7, 5, domain.SubtaskComplete)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestSubtaskService_UpdateSubtask_RecomputesParentStatus(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("RecomputeStatus", mock.Anything, uint64(5)).Return(domain.TaskStatusDone, nil).Once()

	subtaskRepo := new(subtaskRepositoryMock)
	subtaskRepo.On("FindLive", mock.Anything, uint64(12)).Return(
		&domain.Subtask{ID: 12, TaskID: 5, UserID: 7, Status: domain.SubtaskIncomplete}, nil,
	).Once()
	subtaskRepo.On("UpdateStatus", mock.Anything, uint64(12), domain.SubtaskComplete, mock.Anything).Return(nil).Once()

	svc := service.NewSubtaskService(subtaskRepo, taskRepo)
	subtask, err := svc.UpdateSubtask(context.Background(), 7, 12, domain.SubtaskComplete)
	require.NoError(t, err)
	require.Equal(t, domain.SubtaskComplete, subtask.Status)
	taskRepo.AssertExpectations(t)
	subtaskRepo.AssertExpectations(t)
}

func TestSubtaskService_UpdateSubtask_RecomputeFailureDoesNotSurface(t *testing.T) {
	taskRepo := new(taskRepositoryMock)
	taskRepo.On("RecomputeStatus", mock.Anything, uint64(5)).Return(domain.TaskStatus(""), errors.New("deadlock")).Once()

	subtaskRepo := new(subtaskRepositoryMock)
	subtaskRepo.On("FindLive", mock.Anything, uint64(12)).Return(
		&domain.Subtask{ID: 12, TaskID: 5, UserID: 7}, nil,
	).Once()
	subtaskRepo.On("UpdateStatus", mock.Anything, uint64(12), domain.SubtaskComplete, mock.Anything).Return(nil).Once()

	svc := service.NewSubtaskService(subtaskRepo, taskRepo)
	_, err := svc.UpdateSubtask(context.Background(), 7, 12, domain.SubtaskComplete)
	require.NoError(t, err)
}

func TestSubtaskService_DeleteSubtask_RecomputesAfterDelete(t *testing.T) {
	var deleted bool

	taskRepo := new(taskRepositoryMock)
	taskRepo.On("RecomputeStatus", mock.Anything, uint64(5)).Run(func(mock.Arguments) {
		// The aggregation must observe the subtask as already excluded.
		require.True(t, deleted)
	}).Return(domain.TaskStatusTodo, nil).Once()

	subtaskRepo := new(subtaskRepositoryMock)
	subtaskRepo.On("FindLive", mock.Anything, uint64(12)).Return(
		&domain.Subtask{ID: 12, TaskID: 5, UserID: 7}, nil,
	).Once()
	subtaskRepo.On("SoftDelete", mock.Anything, uint64(12), mock.Anything).Run(func(mock.Arguments) {
		deleted = true
	}).Return(nil).Once()

	svc := service.NewSubtaskService(subtaskRepo, taskRepo)
	require.NoError(t, svc.DeleteSubtask(context.Background(), 7, 12))
	taskRepo.AssertExpectations(t)
	subtaskRepo.AssertExpectations(t)
}

func TestSubtaskService_DeleteSubtask_NotFound(t *testing.T) {
	subtaskRepo := new(subtaskRepositoryMock)
	subtaskRepo.On("FindLive", mock.Anything, uint64(12)).Return(nil, domain.ErrSubtaskNotFound).Once()

	svc := service.NewSubtaskService(subtaskRepo, new(taskRepositoryMock))
	err := svc.DeleteSubtask(context.Background(), 7, 12)
	require.ErrorIs(t, err, domain.ErrSubtaskNotFound)
}
