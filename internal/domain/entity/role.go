package entity

import "fmt"

// Role is the closed set of authorization roles. Keeping it a distinct
// type means an unknown role value from storage or a token fails at the
// boundary instead of reaching business logic.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// ParseRole validates a raw role string against the known set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStudent:
		return RoleStudent, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string { return string(r) }
