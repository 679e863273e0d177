package controller

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-supportform/pkg/demo"
	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/validation"
	"github.com/goliatone/go-supportform/pkg/view"
)

// ErrMissingElement is returned by Initialize when the host page lacks the
// form or the status element.
var ErrMissingElement = errors.New("controller: missing element")

// Outcome is the observable UI state after the last submit attempt.
type Outcome string

const (
	OutcomeNeutral Outcome = "neutral"
	OutcomeError   Outcome = "error"
	OutcomeSuccess Outcome = "success"
)

// Controller drives the support request form.
type Controller struct {
	binding  view.Binding
	registry model.Registry
	logger   *slog.Logger
	seeder   Seeder
}

// New constructs a controller bound to b using the support request registry,
// the demo seeder, and a discarding logger unless overridden.
func New(b view.Binding, opts ...Option) *Controller {
	c := &Controller{
		binding:  b,
		registry: model.SupportRequest(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		seeder:   demo.New(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Registry returns the registry the controller validates.
func (c *Controller) Registry() model.Registry {
	return c.registry
}

// ValidateField validates the trimmed value of fieldID, writes the message
// into the field's error slot, and reports whether the field is valid.
func (c *Controller) ValidateField(fieldID string, v validation.Validator) bool {
	value := strings.TrimSpace(c.binding.Value(fieldID))

	var result validation.Result
	if v != nil {
		result = v.Evaluate(value)
	}
	c.binding.SetText(model.ErrorID(fieldID), result.String())

	return result.Valid()
}

// ValidateForm validates every registry field in order. Every error slot is
// updated even after a failure.
func (c *Controller) ValidateForm() bool {
	valid := true
	for _, field := range c.registry.Fields() {
		if !c.ValidateField(field.ID, field.Validator) {
			valid = false
		}
	}
	return valid
}

// ClearErrors blanks every field error slot.
func (c *Controller) ClearErrors() {
	for _, field := range c.registry.Fields() {
		c.binding.SetText(field.ErrorID(), "")
	}
}

// HandleSubmit suppresses the default submit action, revalidates the form,
// and sets the aggregate status.
func (c *Controller) HandleSubmit(ev view.Event) {
	if ev != nil {
		ev.PreventDefault()
	}
	c.ClearErrors()

	if !c.ValidateForm() {
		c.binding.SetStatus(view.Status{Message: model.MessageFormError, IsError: true})
		c.logger.Debug("support form rejected", "invalid", c.invalidFields())
		return
	}

	c.binding.SetStatus(view.Status{Message: model.MessageSuccess})
	c.logger.Debug("support form accepted")
}

// Initialize binds HandleSubmit to the form and runs demo seeding. When the
// form or the status element is missing nothing is bound; the problem is
// logged and returned as an ErrMissingElement.
func (c *Controller) Initialize() error {
	if c.binding == nil {
		return fmt.Errorf("%w: binding is nil", ErrMissingElement)
	}
	for _, id := range []string{model.FormID, model.StatusID} {
		if c.binding.Has(id) {
			continue
		}
		c.logger.Warn("support form not initialized", "missing", id)
		return fmt.Errorf("%w: %q", ErrMissingElement, id)
	}

	c.binding.OnSubmit(c.HandleSubmit)

	if c.seeder != nil && c.seeder.RunIfEnabled(c.binding) {
		c.logger.Info("support form seeded with demo data")
	}
	return nil
}

// Result reports the UI state derived from the binding's status.
func (c *Controller) Result() Outcome {
	status := c.binding.Status()
	switch {
	case status.Neutral():
		return OutcomeNeutral
	case status.IsError:
		return OutcomeError
	default:
		return OutcomeSuccess
	}
}

// Errors returns the current error text of every field that has one, keyed
// by field identifier.
func (c *Controller) Errors() map[string]string {
	out := make(map[string]string)
	for _, field := range c.registry.Fields() {
		if text := c.binding.Text(field.ErrorID()); text != "" {
			out[field.ID] = text
		}
	}
	return out
}

func (c *Controller) invalidFields() []string {
	var out []string
	for _, field := range c.registry.Fields() {
		if c.binding.Text(field.ErrorID()) != "" {
			out = append(out, field.ID)
		}
	}
	return out
}
