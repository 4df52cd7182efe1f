package errors

import (
	"errors"
	"net/http"
)

// Error is an operational error: expected, carrying an HTTP status and a
// user-visible message. Anything that is not an *Error is treated as an
// unexpected failure and surfaced as a generic 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation reports a malformed or semantically invalid request (400).
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Authentication reports a missing or invalid credential (401).
func Authentication(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden reports an authenticated caller without sufficient access (403).
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NotFound reports a missing resource (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Internal reports an unexpected server-side failure (500).
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// StatusOf returns the HTTP status an error maps to.
func StatusOf(err error) int {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the user-visible message for an error. Non-operational
// errors collapse to a generic message so internals never leak to clients.
func MessageOf(err error) string {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr.Message
	}
	return "Internal server error"
}

// IsOperational reports whether err is an expected, classified error.
func IsOperational(err error) bool {
	var opErr *Error
	return errors.As(err, &opErr)
}
