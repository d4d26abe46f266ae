// Package errors defines the coded application errors shared by the storage,
// service, and HTTP layers.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies a class of failure.
type ErrorCode string

const (
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrValidation         ErrorCode = "VALIDATION_ERROR"
	ErrStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
	ErrCorruptData        ErrorCode = "CORRUPT_DATA"
	ErrInternal           ErrorCode = "INTERNAL_ERROR"
)

// AppError is an error carrying a code, a human-readable message and, for
// validation failures, the offending form field.
type AppError struct {
	Code    ErrorCode
	Message string
	Field   string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap creates an AppError around an underlying error.
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NotFound reports a missing recipe.
func NotFound(id string) *AppError {
	return New(ErrNotFound, fmt.Sprintf("recipe %q not found", id))
}

// Validation reports the first violated form rule.
func Validation(field, message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message, Field: field}
}

// StorageUnavailable wraps a failed read or write against the backing store.
func StorageUnavailable(op string, err error) *AppError {
	return Wrap(ErrStorageUnavailable, op, err)
}

// CodeOf returns the code of the first AppError in err's chain, or
// ErrInternal when there is none.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// MessageOf returns the human-readable message of an AppError, falling back
// to err.Error().
func MessageOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
