package apperror

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code       string // Error code (e.g., INVALID_INPUT)
	Message    string // User-friendly message
	HTTPStatus int    // HTTP status code
	Err        error  // Wrapped original error (optional)
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap interface for errors.Is/As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches a wrapped copy against its sentinel, so
// errors.Is(Wrap(cause, ErrNotFound...), ErrNotFound) holds.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e == t || (t.Err == nil && e.Code == t.Code && e.Message == t.Message)
}

// Retryable reports whether the same call may succeed if attempted again.
func (e *AppError) Retryable() bool {
	return retryableCodes[e.Code]
}

// New creates a new AppError without wrapping
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        nil,
	}
}

// Wrap creates an AppError that wraps an existing error
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithCause keeps the sentinel's code and message but records the cause.
func WithCause(sentinel *AppError, cause error) *AppError {
	return Wrap(cause, sentinel.Code, sentinel.Message, sentinel.HTTPStatus)
}

// CodeOf returns the machine-readable code carried by err, or
// CodeInternalError when err is not an AppError.
func CodeOf(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

func IsRetryable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable()
	}
	return false
}
