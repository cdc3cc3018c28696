package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func TestTask_Evaluate(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		due    time.Time
		want   Status
	}{
		{"pending past due becomes overdue", StatusPending, now.Add(-time.Hour), StatusOverdue},
		{"pending before due stays pending", StatusPending, now.Add(time.Hour), StatusPending},
		{"pending due exactly now stays pending", StatusPending, now, StatusPending},
		{"completed past due stays completed", StatusCompleted, now.Add(-time.Hour), StatusCompleted},
		{"overdue stays overdue", StatusOverdue, now.Add(-time.Hour), StatusOverdue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Status: tt.status, DueDate: tt.due}
			got := task.Evaluate(now)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestTask_Evaluate_Idempotent(t *testing.T) {
	task := Task{Status: StatusPending, DueDate: now.Add(-time.Hour)}

	first := task.Evaluate(now)
	assert.Equal(t, StatusOverdue, first.Status)

	// Re-evaluating at later times keeps it overdue.
	second := first.Evaluate(now.Add(24 * time.Hour))
	assert.Equal(t, StatusOverdue, second.Status)
}

func TestTask_Evaluate_Pure(t *testing.T) {
	task := Task{Status: StatusPending, DueDate: now.Add(-time.Hour)}
	_ = task.Evaluate(now)
	assert.Equal(t, StatusPending, task.Status, "receiver must not be mutated")
}

func TestTask_RequestCompletion(t *testing.T) {
	t.Run("pending before due date completes", func(t *testing.T) {
		task := Task{Status: StatusPending, DueDate: now.Add(time.Hour)}
		got, err := task.RequestCompletion("completed", now)
		assert.NoError(t, err)
		assert.Equal(t, StatusCompleted, got.Status)
	})

	t.Run("stale pending past due date is rejected", func(t *testing.T) {
		task := Task{Status: StatusPending, DueDate: now.Add(-time.Hour)}
		_, err := task.RequestCompletion("completed", now)
		assert.ErrorIs(t, err, ErrTaskOverdue)
	})

	t.Run("stored overdue is rejected", func(t *testing.T) {
		task := Task{Status: StatusOverdue, DueDate: now.Add(-time.Hour)}
		_, err := task.RequestCompletion("completed", now)
		assert.ErrorIs(t, err, ErrTaskOverdue)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		task := Task{Status: StatusCompleted, DueDate: now.Add(time.Hour)}
		_, err := task.RequestCompletion("completed", now)
		assert.ErrorIs(t, err, ErrTaskCompleted)
	})

	t.Run("only the exact string completed is accepted", func(t *testing.T) {
		task := Task{Status: StatusPending, DueDate: now.Add(time.Hour)}
		for _, requested := range []string{"", "pending", "overdue", "Completed", "COMPLETED", "done"} {
			_, err := task.RequestCompletion(requested, now)
			assert.ErrorIs(t, err, ErrStatusNotAllowed, "requested=%q", requested)
		}
	})
}
