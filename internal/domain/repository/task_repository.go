package repository

import "studentms/internal/domain/entity"

// TaskRepository defines the interface for task-related database operations.
type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	// GetByIDForAssignee returns the task only when it is assigned to
	// the given user, so a student cannot read other students' tasks.
	GetByIDForAssignee(id, assignedTo string) (*entity.Task, error)
	List() ([]entity.Task, error)
	ListByAssignee(assignedTo string) ([]entity.Task, error)
	Update(t *entity.Task) error
}
