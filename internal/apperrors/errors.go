package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidState indicates that a host model invariant does not hold,
// e.g. an empty snapshot history or a zero rate.
var ErrInvalidState = errors.New("invalid state")

// ErrCycle indicates that an account tree revisits an account.
var ErrCycle = fmt.Errorf("%w: account tree contains a cycle", ErrInvalidState)

// AppError carries an HTTP status code alongside the underlying error.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

// NewAppError wraps err with a status code and a client facing message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }
