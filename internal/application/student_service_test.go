package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studentms/internal/domain/entity"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newStudentFixture() (*StudentService, *fakeTaskRepo) {
	tasks := newFakeTaskRepo()
	svc := NewStudentService(tasks, nil)
	svc.Now = func() time.Time { return fixedNow }
	return svc, tasks
}

func seedTask(t *testing.T, tasks *fakeTaskRepo, assignedTo string, due time.Time, status entity.Status) *entity.Task {
	t.Helper()
	task := &entity.Task{
		Title: "Assignment", Description: "Do the thing",
		AssignedTo: assignedTo, CreatedBy: "user-1",
		DueDate: due, Status: status,
	}
	assert.NoError(t, tasks.Create(task))
	return task
}

func TestStudentService_MyTasks_CorrectsOverdue(t *testing.T) {
	svc, tasks := newStudentFixture()
	ctx := context.Background()

	stale := seedTask(t, tasks, "user-2", fixedNow.Add(-time.Hour), entity.StatusPending)
	fresh := seedTask(t, tasks, "user-2", fixedNow.Add(time.Hour), entity.StatusPending)
	seedTask(t, tasks, "user-3", fixedNow.Add(-time.Hour), entity.StatusPending)

	listed, err := svc.MyTasks(ctx, "user-2")
	assert.NoError(t, err)
	assert.Len(t, listed, 2)

	byID := map[string]entity.Task{}
	for _, task := range listed {
		byID[task.ID] = task
	}
	assert.Equal(t, entity.StatusOverdue, byID[stale.ID].Status)
	assert.Equal(t, entity.StatusPending, byID[fresh.ID].Status)

	stored, err := tasks.GetByID(stale.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusOverdue, stored.Status)
}

func TestStudentService_MyTask_ScopedToAssignee(t *testing.T) {
	svc, tasks := newStudentFixture()
	ctx := context.Background()

	task := seedTask(t, tasks, "user-2", fixedNow.Add(time.Hour), entity.StatusPending)

	got, err := svc.MyTask(ctx, "user-2", task.ID)
	assert.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	// Someone else's task looks exactly like a missing one.
	_, err = svc.MyTask(ctx, "user-3", task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.MyTask(ctx, "user-2", "task-999")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestStudentService_CompleteTask(t *testing.T) {
	svc, tasks := newStudentFixture()
	ctx := context.Background()

	task := seedTask(t, tasks, "user-2", fixedNow.Add(24*time.Hour), entity.StatusPending)

	updated, err := svc.CompleteTask(ctx, "user-2", task.ID, "completed")
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, updated.Status)

	stored, err := tasks.GetByID(task.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, stored.Status)

	// Completed is terminal.
	_, err = svc.CompleteTask(ctx, "user-2", task.ID, "completed")
	assert.ErrorIs(t, err, entity.ErrTaskCompleted)
}

func TestStudentService_CompleteTask_Overdue(t *testing.T) {
	svc, tasks := newStudentFixture()
	ctx := context.Background()

	// Still stored as pending; the deadline has passed.
	task := seedTask(t, tasks, "user-2", fixedNow.Add(-time.Minute), entity.StatusPending)

	_, err := svc.CompleteTask(ctx, "user-2", task.ID, "completed")
	assert.ErrorIs(t, err, entity.ErrTaskOverdue)

	// The overdue discovery sticks even though the completion failed.
	stored, err := tasks.GetByID(task.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusOverdue, stored.Status)
}

func TestStudentService_CompleteTask_RejectsOtherStatuses(t *testing.T) {
	svc, tasks := newStudentFixture()
	ctx := context.Background()

	task := seedTask(t, tasks, "user-2", fixedNow.Add(time.Hour), entity.StatusPending)

	for _, status := range []string{"pending", "overdue", "done", ""} {
		_, err := svc.CompleteTask(ctx, "user-2", task.ID, status)
		assert.ErrorIs(t, err, entity.ErrStatusNotAllowed, "status %q", status)
	}

	stored, err := tasks.GetByID(task.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestStudentService_StorageFailure(t *testing.T) {
	dbErr := errors.New("connection refused")
	ctx := context.Background()

	svc := NewStudentService(&failingTaskRepo{err: dbErr}, nil)
	svc.Now = func() time.Time { return fixedNow }

	// An infrastructure failure is not a missing task.
	_, err := svc.MyTask(ctx, "user-2", "task-1")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.CompleteTask(ctx, "user-2", "task-1", "completed")
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.MyTasks(ctx, "user-2")
	assert.ErrorIs(t, err, dbErr)
}

func TestStudentService_CompleteTask_NotOwned(t *testing.T) {
	svc, tasks := newStudentFixture()
	ctx := context.Background()

	task := seedTask(t, tasks, "user-2", fixedNow.Add(time.Hour), entity.StatusPending)

	_, err := svc.CompleteTask(ctx, "user-3", task.ID, "completed")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	stored, err := tasks.GetByID(task.ID)
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
}
