package repository

import "errors"

// Storage-level outcomes the service layer branches on.
var (
	// ErrNotFound means the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate means an insert violated a uniqueness rule.
	ErrDuplicate = errors.New("already exists")
)
