package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
)

func TestAnalyticsSummary(t *testing.T) {
	ctx := context.Background()
	tasks := repository.NewMemoryTaskRepository()
	users := repository.NewMemoryUserRepository()
	svc := NewAnalyticsService(tasks, users)

	require.NoError(t, users.Create(ctx, &domain.User{ID: "u-1", Name: "Alice", Email: "a@x.com"}))

	now := time.Now().UTC()
	seed := []domain.Task{
		{ID: "t-1", WorkspaceID: "ws-1", Status: domain.TaskStatusDone, Priority: domain.TaskPriorityHigh, UpdatedAt: now},
		{ID: "t-2", WorkspaceID: "ws-1", Status: domain.TaskStatusDone, Priority: domain.TaskPriorityLow, UpdatedAt: now.AddDate(0, 0, -2)},
		{ID: "t-3", WorkspaceID: "ws-1", Status: domain.TaskStatusTodo, Priority: domain.TaskPriorityHigh, AssigneeID: "u-1", UpdatedAt: now},
		{ID: "t-4", WorkspaceID: "ws-1", Status: domain.TaskStatusInProgress, Priority: domain.TaskPriorityMedium, AssigneeID: "u-1", UpdatedAt: now},
		// A different workspace must not leak into the rollup.
		{ID: "t-5", WorkspaceID: "ws-2", Status: domain.TaskStatusDone, Priority: domain.TaskPriorityLow, UpdatedAt: now},
	}
	for i := range seed {
		require.NoError(t, tasks.Create(ctx, &seed[i]))
	}

	summary, err := svc.Summary(ctx, "ws-1")
	require.NoError(t, err)

	require.Equal(t, 4, summary.TotalTasks)
	require.Equal(t, 2, summary.CompletedTasks)
	require.Equal(t, map[string]int{"done": 2, "todo": 1, "in_progress": 1}, summary.TasksByStatus)
	require.Equal(t, map[string]int{"high": 2, "low": 1, "medium": 1}, summary.TasksByPriority)

	require.Len(t, summary.WeeklyData, 7)
	today := summary.WeeklyData[6]
	require.Equal(t, now.Format("2006-01-02"), today.Date)
	require.Equal(t, 1, today.Completed)
	twoDaysAgo := summary.WeeklyData[4]
	require.Equal(t, 1, twoDaysAgo.Completed)

	require.Len(t, summary.Workload, 1)
	require.Equal(t, "Alice", summary.Workload[0].Name)
	require.Equal(t, 2, summary.Workload[0].Tasks)
}

func TestAnalyticsSummaryEmptyWorkspace(t *testing.T) {
	ctx := context.Background()
	svc := NewAnalyticsService(repository.NewMemoryTaskRepository(), repository.NewMemoryUserRepository())

	summary, err := svc.Summary(ctx, "ws-empty")
	require.NoError(t, err)
	require.Equal(t, 0, summary.TotalTasks)
	require.Equal(t, 0, summary.CompletedTasks)
	require.Len(t, summary.WeeklyData, 7)
	require.Empty(t, summary.Workload)
}
