package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Duplicates are always reported together with ErrValidation.
var ErrDuplicate = errors.New("resource already exists")

// ErrArchivedReference indicates that an archived resource, unit or client was used in a new movement.
var ErrArchivedReference = errors.New("reference is archived")

// ErrInvalidState indicates that the operation is not allowed in the entity's current state.
var ErrInvalidState = errors.New("invalid state")

// ErrInsufficientStock indicates that applying a movement would drive a balance below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code together with a user-facing message
// and the underlying cause. Used for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
