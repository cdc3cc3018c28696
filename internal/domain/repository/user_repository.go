package repository

import (
	"errors"

	"studentms/internal/domain/entity"
)

// ErrDuplicateEmail is returned by Create when the email is already
// registered; email is unique across all users.
var ErrDuplicateEmail = errors.New("email already in use")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	ListByRole(role entity.Role) ([]entity.User, error)
}
