package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/validation"
)

var (
	introPolicyOnce sync.Once
	introPolicy     *bluemonday.Policy
)

// Renderer renders the host page.
type Renderer struct {
	tmpl    *pongo2.Template
	context pongo2.Context
}

type pageField struct {
	ID           string
	Label        string
	ErrorID      string
	InputType    string
	Autocomplete string
	Choices      []model.Choice
}

// New constructs the renderer. The theme is selected and the template
// compiled up front so Render only executes. The template comes from
// WithTemplate, else the theme's page.support entry, else DefaultTemplate.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templates:   TemplatesFS(),
		manifest:    DefaultManifest(),
		registry:    model.SupportRequest(),
		assetPrefix: DefaultAssetPrefix,
		title:       DefaultTitle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	selection, err := selectTheme(cfg.manifest, cfg.variant, cfg.assetPrefix, cfg.bundle)
	if err != nil {
		return nil, err
	}

	name := cfg.template
	if name == "" {
		name = selection.Template(ThemeTemplateKey, DefaultTemplate)
	}
	set := pongo2.NewSet("supportform", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("page: load template %q: %w", name, err)
	}

	return &Renderer{
		tmpl: tmpl,
		context: pongo2.Context{
			"title":         cfg.title,
			"intro":         SanitizeIntro(cfg.intro),
			"form_id":       model.FormID,
			"status_id":     model.StatusID,
			"fields":        pageFields(cfg.registry),
			"css_vars":      cssVars(selection.CSSVariables("--")),
			"theme_name":    selection.Theme,
			"theme_variant": selection.Variant,
			"loader_url":    assetURL(selection, ThemeLoaderKey, cfg.assetPrefix, DefaultLoader),
			"bundle_url":    assetURL(selection, ThemeBundleKey, cfg.assetPrefix, DefaultBundle),
		},
	}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "page"
}

// ContentType reports the rendered media type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the host page to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer) error {
	if r == nil || r.tmpl == nil {
		return errors.New("page: renderer is nil")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if err := r.tmpl.ExecuteWriter(r.context, w); err != nil {
		return fmt.Errorf("page: execute template: %w", err)
	}
	return nil
}

// SanitizeIntro strips anything but user-generated-content markup from an
// intro fragment.
func SanitizeIntro(fragment string) string {
	if fragment == "" {
		return ""
	}
	introPolicyOnce.Do(func() {
		introPolicy = bluemonday.UGCPolicy()
	})
	return introPolicy.Sanitize(fragment)
}

func pageFields(reg model.Registry) []pageField {
	fields := reg.Fields()
	out := make([]pageField, 0, len(fields))
	for _, field := range fields {
		out = append(out, pageField{
			ID:           field.ID,
			Label:        field.Label,
			ErrorID:      field.ErrorID(),
			InputType:    inputType(field),
			Autocomplete: autocomplete(field.ID),
			Choices:      append([]model.Choice(nil), field.Choices...),
		})
	}
	return out
}

func inputType(field model.Field) string {
	switch field.Kind() {
	case validation.KindBirthDate:
		return "date"
	case validation.KindPhone:
		return "tel"
	default:
		return "text"
	}
}

func autocomplete(id string) string {
	switch id {
	case model.FieldLastName:
		return "family-name"
	case model.FieldFirstName:
		return "given-name"
	case model.FieldBirthDate:
		return "bday"
	case model.FieldAddress:
		return "street-address"
	case model.FieldPhone:
		return "tel"
	default:
		return ""
	}
}
