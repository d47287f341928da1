package errx

import (
	"errors"
	"fmt"
)

const (
	// SystemErrorMessage is the user-facing fallback for internal failures.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage covers Redis failures other than key misses.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage is the message for Redis key misses surfaced as not-found.
	RedisNotFoundMessage = "record not found"
)

// AppError pairs an underlying error with a status code and a message safe
// to show outside the service. The wrapped error keeps the detail for logs.
type AppError struct {
	Err     error
	Status  int
	Message string
}

func New(err error, status int, message string) *AppError {
	return &AppError{Err: err, Status: status, Message: message}
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

// Is matches against the wrapped error so errors.Is works across the wrap.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As matches *AppError itself or anything in the wrapped chain.
func (e *AppError) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**AppError); ok {
		*t = e
		return true
	}
	return false
}
