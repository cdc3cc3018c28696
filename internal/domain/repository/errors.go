package repository

import "errors"

// ErrNotFound is returned by lookups when no row matches. Callers use
// it to tell a missing record apart from a storage failure.
var ErrNotFound = errors.New("not found")
