package tui

import (
	"io"

	"github.com/goliatone/go-supportform/pkg/model"
)

// DefaultMaxAttempts bounds how many times Run re-prompts invalid fields.
const DefaultMaxAttempts = 5

// Theme captures optional formatting hints the session applies when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the terminal session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput sets the writer used by the default survey driver for Info
// messages.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithMaxAttempts bounds the number of submit attempts. Values below one are
// ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithRegistry replaces the fields prompted by the session.
func WithRegistry(reg model.Registry) Option {
	return func(s *Session) {
		if reg.Len() > 0 {
			s.registry = reg
		}
	}
}
