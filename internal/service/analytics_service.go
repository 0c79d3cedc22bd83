package service

import (
	"context"
	"errors"
	"time"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

// WeeklyEntry counts tasks completed on one day.
type WeeklyEntry struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// WorkloadEntry counts open tasks per assignee.
type WorkloadEntry struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Tasks  int    `json:"tasks"`
}

// AnalyticsSummary is the read-only rollup over a workspace's tasks.
type AnalyticsSummary struct {
	TotalTasks      int             `json:"total_tasks"`
	CompletedTasks  int             `json:"completed_tasks"`
	TasksByStatus   map[string]int  `json:"tasks_by_status"`
	TasksByPriority map[string]int  `json:"tasks_by_priority"`
	WeeklyData      []WeeklyEntry   `json:"weekly_data"`
	Workload        []WorkloadEntry `json:"workload"`
}

// AnalyticsService computes task rollups for a workspace.
type AnalyticsService struct {
	tasks repository.TaskRepository
	users repository.UserRepository
}

// NewAnalyticsService constructs the service.
func NewAnalyticsService(tasks repository.TaskRepository, users repository.UserRepository) *AnalyticsService {
	return &AnalyticsService{tasks: tasks, users: users}
}

// Summary aggregates totals, per-status and per-priority counts, the last
// seven days of completions, and open-task workload per assignee.
func (s *AnalyticsService) Summary(ctx context.Context, workspaceID string) (*AnalyticsSummary, error) {
	tasks, err := s.tasks.ListByWorkspace(ctx, workspaceID, "")
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	summary := &AnalyticsSummary{
		TasksByStatus:   make(map[string]int),
		TasksByPriority: make(map[string]int),
	}
	summary.TotalTasks = len(tasks)

	for _, task := range tasks {
		summary.TasksByStatus[string(task.Status)]++
		summary.TasksByPriority[string(task.Priority)]++
		if task.Status == domain.TaskStatusDone {
			summary.CompletedTasks++
		}
	}

	summary.WeeklyData = weeklyCompletions(tasks, time.Now().UTC())

	workload, err := s.workload(ctx, tasks)
	if err != nil {
		return nil, err
	}
	summary.Workload = workload

	return summary, nil
}

// weeklyCompletions buckets done tasks by their update date over the last
// seven days, oldest first.
func weeklyCompletions(tasks []domain.Task, now time.Time) []WeeklyEntry {
	entries := make([]WeeklyEntry, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		completed := 0
		for _, task := range tasks {
			if task.Status != domain.TaskStatusDone {
				continue
			}
			if sameDay(task.UpdatedAt, day) {
				completed++
			}
		}
		entries = append(entries, WeeklyEntry{
			Date:      day.Format("2006-01-02"),
			Completed: completed,
		})
	}
	return entries
}

func (s *AnalyticsService) workload(ctx context.Context, tasks []domain.Task) ([]WorkloadEntry, error) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, task := range tasks {
		if task.AssigneeID == "" || task.Status == domain.TaskStatusDone {
			continue
		}
		if _, seen := counts[task.AssigneeID]; !seen {
			order = append(order, task.AssigneeID)
		}
		counts[task.AssigneeID]++
	}

	workload := make([]WorkloadEntry, 0, len(order))
	for _, assigneeID := range order {
		user, err := s.users.GetByID(ctx, assigneeID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, apperrors.MapError(err)
		}
		workload = append(workload, WorkloadEntry{
			Name:   user.Name,
			Avatar: user.Avatar,
			Tasks:  counts[assigneeID],
		})
	}
	return workload, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
