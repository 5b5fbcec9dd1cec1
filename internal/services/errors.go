package services

import (
	"errors"

	"travel-recommendation-backend/internal/repository"
)

// Domain error taxonomy. Handlers map these to HTTP statuses in one place;
// anything outside the taxonomy is a storage failure and surfaces as 500
// with its cause attached.
var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = repository.ErrNotFound

	// ErrConflict means the operation would duplicate existing state.
	ErrConflict = repository.ErrDuplicate

	// ErrUnauthorized means the caller's credentials are missing or wrong.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the caller is authenticated but not allowed.
	ErrForbidden = errors.New("forbidden")
)
