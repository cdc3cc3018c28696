package entity

import (
	"time"
)

// User is the aggregate root for the credential store. Passwords are
// stored as bcrypt hashes in Password and must never be serialized.
type User struct {
	ID         string
	Email      string
	Password   string
	Name       string
	Role       Role
	Department string // meaningful for students only
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
