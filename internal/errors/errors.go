package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrAdminExists is returned when signing up an admin whose email is taken.
	ErrAdminExists = errors.New("Admin already exists")
	// ErrAdminNotFound is returned when an admin email lookup misses.
	ErrAdminNotFound = errors.New("Admin not found")
	// ErrUserNotFound is returned when a user email lookup misses.
	ErrUserNotFound = errors.New("User not found")
	// ErrCourseNotFound is returned when a course id lookup misses.
	ErrCourseNotFound = errors.New("Course not found")
	// ErrInvalidCredentials is returned when a password does not match its hash.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// MessageResponse is the JSON body used for every non-2xx response, and for
// the confirmation bodies of write endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToMessageResponse converts an HTTPError to a MessageResponse body.
func (e *HTTPError) ToMessageResponse() MessageResponse {
	return MessageResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Lookup misses become 404
// and credential mismatches 401; everything else, validation and persistence
// failures included, is reported as 400.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrAdminNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrCourseNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
