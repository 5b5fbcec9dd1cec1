package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"travel-recommendation-backend/internal/middleware"
	"travel-recommendation-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// validate checks request body struct tags; shared across handlers.
var validate = validator.New()

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse represents a simple confirmation response
type MessageResponse struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response. nil payloads for slices render as []
// rather than null at the call sites that care.
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondServiceError maps the domain error taxonomy to HTTP statuses.
// Unrecognized errors are storage failures: the cause is attached to the
// response for diagnosability, never swallowed.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrConflict):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrUnauthorized):
		respondError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, services.ErrForbidden):
		respondError(w, err.Error(), http.StatusForbidden)
	default:
		respondError(w, err.Error(), http.StatusInternalServerError)
	}
}

// pathID parses a numeric URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// requireOwner verifies that the authenticated caller matches the user id
// in the path. Writes the error response itself and reports whether the
// handler may proceed.
func requireOwner(w http.ResponseWriter, r *http.Request, pathUserID int64) bool {
	if middleware.GetUserID(r.Context()) != pathUserID {
		respondError(w, "Unauthorized access", http.StatusForbidden)
		return false
	}
	return true
}
