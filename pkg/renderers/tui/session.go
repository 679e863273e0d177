package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/view"
)

// Session is a terminal-backed view.Binding.
type Session struct {
	*view.Document

	driver      PromptDriver
	out         io.Writer
	registry    model.Registry
	theme       Theme
	maxAttempts int
}

var _ view.Binding = (*Session)(nil)

// New constructs a session located at rawURL. The location only matters for
// demo seeding (`?demo=1`).
func New(rawURL string, options ...Option) *Session {
	s := &Session{
		out:         os.Stdout,
		registry:    model.SupportRequest(),
		maxAttempts: DefaultMaxAttempts,
		theme:       Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.Document = view.NewDocument(rawURL, s.registry.ElementIDs()...)
	if s.driver == nil {
		s.driver = newSurveyDriver(s.out)
	}
	return s
}

// Run prompts every field, submits, and reports errors and the status. Fields
// that failed are prompted again until the form is accepted, the context is
// cancelled, the user aborts, or the attempt limit is reached.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.Handlers() == 0 {
		return ErrNotBound
	}

	pending := s.registry.Fields()
	for attempt := 1; ; attempt++ {
		for _, field := range pending {
			if err := s.promptField(ctx, field); err != nil {
				return err
			}
		}

		s.Submit()

		failed, err := s.report(ctx)
		if err != nil {
			return err
		}
		if !s.Status().IsError {
			return nil
		}
		if attempt >= s.maxAttempts {
			return fmt.Errorf("%w: %d", ErrTooManyAttempts, attempt)
		}
		pending = failed
	}
}

func (s *Session) promptField(ctx context.Context, field model.Field) error {
	current := s.Value(field.ID)

	if len(field.Choices) > 0 {
		labels := make([]string, 0, len(field.Choices))
		for _, choice := range field.Choices {
			labels = append(labels, choice.Label)
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      labels,
			DefaultIndex: field.ChoiceIndex(current),
		})
		if err != nil {
			return err
		}
		value := ""
		if idx >= 0 && idx < len(field.Choices) {
			value = field.Choices[idx].Value
		}
		s.SetValue(field.ID, value)
		return nil
	}

	response, err := s.driver.Input(ctx, InputConfig{
		Message: field.Label,
		Default: current,
	})
	if err != nil {
		return err
	}
	s.SetValue(field.ID, response)
	return nil
}

func (s *Session) report(ctx context.Context) ([]model.Field, error) {
	var failed []model.Field
	for _, field := range s.registry.Fields() {
		text := s.Text(field.ErrorID())
		if text == "" {
			continue
		}
		failed = append(failed, field)
		if err := s.driver.Info(ctx, fmt.Sprintf("%s%s: %s", s.theme.ErrorPrefix, field.Label, text)); err != nil {
			return nil, err
		}
	}

	status := s.Status()
	if status.Message == "" {
		return failed, nil
	}
	prefix := s.theme.InfoPrefix
	if status.IsError {
		prefix = s.theme.ErrorPrefix
	}
	if err := s.driver.Info(ctx, prefix+status.Message); err != nil {
		return nil, err
	}
	return failed, nil
}
