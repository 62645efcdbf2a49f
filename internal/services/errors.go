package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrGameNotFound is returned when no game exists for the given id.
	ErrGameNotFound = errors.New("game not found")
	// ErrUserNotFound is returned when no user matches the given id or name.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateName is returned when a user name is already taken.
	ErrDuplicateName = errors.New("username already exists")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserInactive is returned when an inactive user attempts to log in.
	ErrUserInactive = errors.New("user is inactive")
)

// ValidationError reports a caller-correctable problem with a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// WindowClosedError is returned when a ticket mutation arrives inside the
// guarded interval before the draw. Remaining is how long ago the window
// closed relative to the draw, kept so callers can report it.
type WindowClosedError struct {
	DrawAt    time.Time
	Remaining time.Duration
}

func (e *WindowClosedError) Error() string {
	return fmt.Sprintf("updates are not allowed within 5 minutes of the game time (draw at %s)",
		e.DrawAt.Format("15:04"))
}
