package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name   string
		counts SubtaskCounts
		want   TaskStatus
	}{
		{"all complete", SubtaskCounts{Total: 3, Complete: 3, Incomplete: 0}, TaskStatusDone},
		{"one complete of three", SubtaskCounts{Total: 3, Complete: 1, Incomplete: 2}, TaskStatusInProgress},
		{"all incomplete", SubtaskCounts{Total: 3, Complete: 0, Incomplete: 3}, TaskStatusTodo},
		{"no live subtasks", SubtaskCounts{}, TaskStatusTodo},
		{"single complete", SubtaskCounts{Total: 1, Complete: 1, Incomplete: 0}, TaskStatusDone},
		{"single incomplete", SubtaskCounts{Total: 1, Complete: 0, Incomplete: 1}, TaskStatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AggregateStatus(tt.counts))
		})
	}
}

func TestTaskStatus_Valid(t *testing.T) {
	require.True(t, TaskStatusTodo.Valid())
	require.True(t, TaskStatusInProgress.Valid())
	require.True(t, TaskStatusDone.Valid())
	require.False(t, TaskStatus("ARCHIVED").Valid())
	require.False(t, TaskStatus("").Valid())
}
