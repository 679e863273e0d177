package controller

import (
	"log/slog"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/view"
)

// Seeder prefills the binding at initialization.
type Seeder interface {
	RunIfEnabled(b view.Binding) bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRegistry replaces the support request registry.
func WithRegistry(reg model.Registry) Option {
	return func(c *Controller) {
		if reg.Len() > 0 {
			c.registry = reg
		}
	}
}

// WithLogger sets the logging collaborator.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSeeder sets the seeder run by Initialize. Passing nil disables
// seeding.
func WithSeeder(seeder Seeder) Option {
	return func(c *Controller) {
		c.seeder = seeder
	}
}
