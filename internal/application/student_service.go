package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"studentms/internal/domain/entity"
	"studentms/internal/domain/repository"
)

// StudentService implements the student-facing operations. Every call
// is scoped to the caller's own tasks.
type StudentService struct {
	Tasks  repository.TaskRepository
	Logger *logrus.Logger

	// Now is the time source; injectable for tests.
	Now func() time.Time
}

func NewStudentService(tasks repository.TaskRepository, logger *logrus.Logger) *StudentService {
	return &StudentService{Tasks: tasks, Logger: logger, Now: time.Now}
}

// MyTasks returns the caller's tasks with overdue status corrected.
func (s *StudentService) MyTasks(ctx context.Context, studentID string) ([]entity.Task, error) {
	tasks, err := s.Tasks.ListByAssignee(studentID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Task, len(tasks))
	for i, t := range tasks {
		out[i] = s.refresh(t)
	}
	return out, nil
}

// MyTask returns one of the caller's tasks; a task assigned to someone
// else is indistinguishable from a missing one.
func (s *StudentService) MyTask(ctx context.Context, studentID, taskID string) (*entity.Task, error) {
	t, err := s.Tasks.GetByIDForAssignee(taskID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	refreshed := s.refresh(*t)
	return &refreshed, nil
}

// CompleteTask validates and applies a student-requested status change.
// The lifecycle rules live on the entity; this persists the outcome.
func (s *StudentService) CompleteTask(ctx context.Context, studentID, taskID, requestedStatus string) (*entity.Task, error) {
	t, err := s.Tasks.GetByIDForAssignee(taskID, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	updated, err := t.RequestCompletion(requestedStatus, s.Now())
	if err != nil {
		// A pending task discovered to be overdue is persisted even
		// though the completion is rejected.
		if updated.Status != t.Status {
			s.persist(updated)
		}
		return nil, err
	}

	if err := s.Tasks.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *StudentService) refresh(t entity.Task) entity.Task {
	evaluated := t.Evaluate(s.Now())
	if evaluated.Status != t.Status {
		s.persist(evaluated)
	}
	return evaluated
}

func (s *StudentService) persist(t entity.Task) {
	if err := s.Tasks.Update(&t); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("task_id", t.ID).Warn("persist overdue status failed")
	}
}
