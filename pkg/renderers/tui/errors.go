package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrTooManyAttempts is returned when the form is still invalid after the
	// configured number of submit attempts.
	ErrTooManyAttempts = errors.New("tui: too many attempts")
	// ErrNotBound is returned by Run when no submit handler is bound to the
	// session.
	ErrNotBound = errors.New("tui: no submit handler bound")
)
