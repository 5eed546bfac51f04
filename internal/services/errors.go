package services

import (
	"errors"
	"net/http"
)

// Failure kinds for POS operations. Concrete errors wrap one of these with
// %w so callers classify with errors.Is instead of matching message text.
var (
	// ErrInvalidArgument marks a request that can never succeed as given.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a reference to something that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a request that lost to the current state, e.g. a
	// station that is already occupied.
	ErrConflict = errors.New("conflict")
)

// HTTPStatus maps a service error to its transport status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
