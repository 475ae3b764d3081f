// Package apperror carries the HTTP-facing classification of use case failures.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

const msgInternal = "internal server error"

// AppError is a failure with a status code and a client-safe message.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(status int, message string) *AppError {
	return &AppError{StatusCode: status, Message: message}
}

func BadRequest(message string) *AppError   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *AppError { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *AppError    { return New(http.StatusForbidden, message) }
func NotFound(message string) *AppError     { return New(http.StatusNotFound, message) }
func Conflict(message string) *AppError     { return New(http.StatusConflict, message) }

// Internal hides cause from clients but keeps it for logging.
func Internal(cause error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: msgInternal, Err: cause}
}

// From classifies any error. Errors that are not an *AppError become Internal.
func From(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	return From(err).StatusCode
}
