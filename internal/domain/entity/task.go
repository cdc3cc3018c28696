package entity

import (
	"errors"
	"time"
)

// Status is a task's lifecycle state. "overdue" is derived lazily from
// the due date whenever a task is read or written; there is no
// background sweep correcting it.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
)

var (
	// ErrStatusNotAllowed rejects any student-requested status other
	// than "completed".
	ErrStatusNotAllowed = errors.New("students can only mark tasks as completed")
	// ErrTaskOverdue rejects completion of a task past its due date.
	ErrTaskOverdue = errors.New("cannot mark an overdue task as completed")
	// ErrTaskCompleted rejects transitions out of the terminal state.
	ErrTaskCompleted = errors.New("task is already completed")
)

// Task is assigned by an admin to a student and tracked against a due
// date. AssignedTo is validated to reference a student at creation
// time; it is not enforced referentially afterwards.
type Task struct {
	ID            string
	Title         string
	Description   string
	AssignedTo    string
	CreatedBy     string
	DueDate       time.Time
	Status        Status
	AttachmentURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Evaluate returns the task with its status corrected against now:
// a pending task past its due date becomes overdue. Pure with respect
// to stored state; the caller decides whether to persist the result.
// Idempotent: re-evaluating at any later time keeps it overdue.
func (t Task) Evaluate(now time.Time) Task {
	if t.Status == StatusPending && t.DueDate.Before(now) {
		t.Status = StatusOverdue
	}
	return t
}

// RequestCompletion validates a student-initiated status change.
// Only the exact value "completed" is accepted. The task is
// re-evaluated against now first, so a stale pending task whose due
// date has passed is rejected the same way as a stored overdue one.
// Completed is terminal.
func (t Task) RequestCompletion(requested string, now time.Time) (Task, error) {
	if Status(requested) != StatusCompleted {
		return t, ErrStatusNotAllowed
	}
	t = t.Evaluate(now)
	switch t.Status {
	case StatusPending:
		t.Status = StatusCompleted
		return t, nil
	case StatusOverdue:
		return t, ErrTaskOverdue
	default:
		return t, ErrTaskCompleted
	}
}
