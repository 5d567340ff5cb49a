// Package apierr carries a status code and a human-readable message from the
// service layer to the transport boundary. Services return (*apierr.Error)
// values for every expected failure; anything else reaching the boundary is
// rendered as a 500.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error pairs an HTTP status code with the exact message exposed to clients.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an Error with a formatted message.
func New(status int, format string, args ...any) *Error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// BadRequest builds a 400 error.
func BadRequest(format string, args ...any) *Error {
	return New(http.StatusBadRequest, format, args...)
}

// Unprocessable builds a 422 error.
func Unprocessable(format string, args ...any) *Error {
	return New(http.StatusUnprocessableEntity, format, args...)
}

// NotFound builds a 404 error of the fixed form used for entity lookups:
// "No <entity> found with <idField>: <value>".
func NotFound(entity, idField string, id int) *Error {
	return New(http.StatusNotFound, "No %s found with %s: %d", entity, idField, id)
}

// Internal is the generic 500 error; the original failure detail is dropped.
func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal Server Error"}
}

// From extracts an *Error from err, or nil if err carries no API status.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// PositiveID validates that a path or query identifier is a positive
// integer, returning the field-specific 400 error otherwise.
func PositiveID(field string, id int) *Error {
	if id <= 0 {
		return BadRequest("'%s' must be a positive integer.", field)
	}
	return nil
}
