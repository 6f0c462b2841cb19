package service

import (
	"errors"
	"fmt"
)

// ErrForbidden is returned when a mutating operation is attempted without an
// admin session.
var ErrForbidden = errors.New("admin access required")

// ErrLocked is returned when a pick is submitted after the game's lock time
// or once the game is FINAL.
var ErrLocked = errors.New("picks are locked for this game")

// ValidationError marks caller-correctable input problems. Routes map it to
// a 400 with the message shown to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
