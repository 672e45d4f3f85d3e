// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Pattern errors.
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrInvalidWeight  = errors.New("invalid pattern weight")

	// Storage errors.
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEntry = errors.New("duplicate entry")

	// Configuration errors.
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrInvalidSensitivity = errors.New("sensitivity must be between 1 and 5")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsUserError reports whether err carries a message meant for the user.
func IsUserError(err error) bool {
	var userErr *UserError
	return errors.As(err, &userErr)
}
