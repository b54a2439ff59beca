package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when the store rejects an insert that
	// violates the unique email index.
	ErrDuplicateEmail = errors.New("email already in use")
)
