package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lakshita-01/devPulse/internal/domain"
	"github.com/lakshita-01/devPulse/internal/events"
	"github.com/lakshita-01/devPulse/internal/repository"
	apperrors "github.com/lakshita-01/devPulse/pkg/util"
)

type TaskServiceSuite struct {
	suite.Suite
	tasks       *repository.MemoryTaskRepository
	users       *repository.MemoryUserRepository
	broadcaster *captureBroadcaster
	svc         *TaskService
	ctx         context.Context
}

func (s *TaskServiceSuite) SetupTest() {
	s.tasks = repository.NewMemoryTaskRepository()
	s.users = repository.NewMemoryUserRepository()
	s.broadcaster = &captureBroadcaster{}
	s.svc = NewTaskService(TaskDependencies{
		TaskRepo:    s.tasks,
		UserRepo:    s.users,
		Broadcaster: s.broadcaster,
	})
	s.ctx = context.Background()
}

func TestTaskServiceSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceSuite))
}

func (s *TaskServiceSuite) TestCreateDefaultsAndBroadcast() {
	view, err := s.svc.Create(s.ctx, TaskCreateInput{
		Title:       "Ship feature",
		ProjectID:   "proj-1",
		WorkspaceID: "ws-1",
	})
	s.Require().NoError(err)

	s.Equal(domain.TaskStatusTodo, view.Status)
	s.Equal(domain.TaskPriorityMedium, view.Priority)
	s.NotNil(view.Subtasks)
	s.Nil(view.Assignee)

	broadcasts := s.broadcaster.forWorkspace("ws-1")
	s.Require().Len(broadcasts, 1)
	s.Equal(events.EventTaskCreated, broadcasts[0].Type)
	s.Empty(s.broadcaster.forWorkspace("ws-2"))
}

func (s *TaskServiceSuite) TestCreateHydratesAssignee() {
	s.Require().NoError(s.users.Create(s.ctx, &domain.User{
		ID:    "u-1",
		Name:  "Alice",
		Email: "a@x.com",
	}))

	view, err := s.svc.Create(s.ctx, TaskCreateInput{
		Title:       "Review PR",
		ProjectID:   "proj-1",
		WorkspaceID: "ws-1",
		AssigneeID:  "u-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(view.Assignee)
	s.Equal("Alice", view.Assignee.Name)
}

func (s *TaskServiceSuite) TestCreateRejectsUnknownEnums() {
	badStatus := domain.TaskStatus("bogus")
	_, err := s.svc.Create(s.ctx, TaskCreateInput{
		Title: "x", ProjectID: "p", WorkspaceID: "w", Status: badStatus,
	})
	s.assertCode(err, "INVALID_INPUT")
}

func (s *TaskServiceSuite) TestUpdateBroadcastsAndPatches() {
	view, err := s.svc.Create(s.ctx, TaskCreateInput{
		Title:       "Ship feature",
		ProjectID:   "proj-1",
		WorkspaceID: "ws-1",
	})
	s.Require().NoError(err)

	done := domain.TaskStatusDone
	updated, err := s.svc.Update(s.ctx, &view.Task, repository.TaskPatch{Status: &done})
	s.Require().NoError(err)
	s.Equal(domain.TaskStatusDone, updated.Status)
	s.Equal("Ship feature", updated.Title)

	broadcasts := s.broadcaster.forWorkspace("ws-1")
	s.Require().Len(broadcasts, 2)
	s.Equal(events.EventTaskUpdated, broadcasts[1].Type)
}

func (s *TaskServiceSuite) TestDeleteBroadcasts() {
	view, err := s.svc.Create(s.ctx, TaskCreateInput{
		Title:       "Ship feature",
		ProjectID:   "proj-1",
		WorkspaceID: "ws-1",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.svc.Delete(s.ctx, &view.Task))

	_, err = s.svc.Get(s.ctx, view.ID)
	s.assertCode(err, "NOT_FOUND")

	broadcasts := s.broadcaster.forWorkspace("ws-1")
	s.Require().Len(broadcasts, 2)
	s.Equal(events.EventTaskDeleted, broadcasts[1].Type)
	s.Equal(view.ID, broadcasts[1].TaskID)
}

func (s *TaskServiceSuite) TestApplyGeneratedSubtasks() {
	view, err := s.svc.Create(s.ctx, TaskCreateInput{
		Title:       "Ship feature",
		ProjectID:   "proj-1",
		WorkspaceID: "ws-1",
	})
	s.Require().NoError(err)

	subtasks := []domain.Subtask{{Title: "Plan"}, {Title: "Build"}}
	s.Require().NoError(s.svc.ApplyGeneratedSubtasks(s.ctx, view.ID, subtasks))

	task, err := s.svc.Get(s.ctx, view.ID)
	s.Require().NoError(err)
	s.True(task.AIGenerated)
	s.Equal(subtasks, task.Subtasks)

	broadcasts := s.broadcaster.forWorkspace("ws-1")
	s.Require().Len(broadcasts, 2)
	s.Equal(events.EventTaskAIComplete, broadcasts[1].Type)
}

func (s *TaskServiceSuite) TestGetUnknownTask() {
	_, err := s.svc.Get(s.ctx, "missing")
	s.assertCode(err, "NOT_FOUND")
}

func (s *TaskServiceSuite) assertCode(err error, code string) {
	s.Require().Error(err)
	var de *apperrors.DomainError
	s.Require().True(errors.As(err, &de))
	s.Equal(code, de.Code)
}
