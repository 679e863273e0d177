// Package supportform validates the support request form. The controller
// lives in pkg/controller and drives any view.Binding; this package exposes
// the common entry points so callers can wire a form in a few lines.
package supportform

import (
	"context"
	"io"

	"github.com/goliatone/go-supportform/pkg/controller"
	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/renderers/page"
	"github.com/goliatone/go-supportform/pkg/validation"
	"github.com/goliatone/go-supportform/pkg/view"
)

// Binding aliases view.Binding for callers implementing their own surface.
type Binding = view.Binding

// Status aliases view.Status.
type Status = view.Status

// Field aliases model.Field.
type Field = model.Field

// Result aliases validation.Result.
type Result = validation.Result

// Registry returns the seven-field support request registry.
func Registry() model.Registry {
	return model.SupportRequest()
}

// NewController binds a controller to b. Call Initialize on the result to
// attach the submit handler and run demo seeding.
func NewController(b Binding, options ...controller.Option) *controller.Controller {
	return controller.New(b, options...)
}

// Start creates a controller bound to b and initializes it.
func Start(b Binding, options ...controller.Option) (*controller.Controller, error) {
	ctrl := controller.New(b, options...)
	if err := ctrl.Initialize(); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// RenderPage writes the host page using the default template and theme.
func RenderPage(ctx context.Context, w io.Writer, options ...page.Option) error {
	renderer, err := page.New(options...)
	if err != nil {
		return err
	}
	return renderer.Render(ctx, w)
}
