package exception

import (
	"errors"
	"fmt"
)

// ApplicationError is an error that carries the HTTP status it maps to.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy of e wrapping cause. The copy still matches e with errors.Is.
func (e ApplicationError) WithCause(cause error) ApplicationError {
	e.Cause = cause

	return e
}

// Is matches sentinel errors by message and status. A target carrying a cause
// only matches an error wrapping the same cause.
func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if e.Message != targetErr.Message || e.StatusCode != targetErr.StatusCode {
		return false
	}

	return targetErr.Cause == nil || errors.Is(e.Cause, targetErr.Cause)
}

// ErrorCode returns the HTTP status code of the error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}
