package page

import (
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-supportform/pkg/model"
)

const (
	// DefaultTemplate is the host page template name inside the templates FS.
	DefaultTemplate = "support_form.html"
	// DefaultAssetPrefix is where the bundle and wasm_exec.js are served.
	DefaultAssetPrefix = "/assets"
	// DefaultBundle is the compiled controller file name.
	DefaultBundle = "support-form.wasm"
	// DefaultTitle is the page heading.
	DefaultTitle = "Demande d'assistance"
)

// Option configures the page renderer.
type Option func(*config)

type config struct {
	templates   fs.FS
	template    string
	manifest    *theme.Manifest
	variant     string
	registry    model.Registry
	assetPrefix string
	bundle      string
	title       string
	intro       string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(path) == "" {
			return
		}
		cfg.templates = os.DirFS(path)
	}
}

// WithTemplate overrides the template name selected by the theme.
func WithTemplate(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.template = trimmed
		}
	}
}

// WithTheme selects the theme manifest and variant used for CSS tokens.
func WithTheme(manifest *theme.Manifest, variant string) Option {
	return func(cfg *config) {
		if manifest != nil {
			cfg.manifest = manifest
		}
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithRegistry replaces the rendered fields.
func WithRegistry(reg model.Registry) Option {
	return func(cfg *config) {
		if reg.Len() > 0 {
			cfg.registry = reg
		}
	}
}

// WithAssetPrefix sets the URL prefix of the bundle and loader script when
// the theme manifest declares none.
func WithAssetPrefix(prefix string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimRight(strings.TrimSpace(prefix), "/")
		if trimmed != "" {
			cfg.assetPrefix = trimmed
		}
	}
}

// WithBundle replaces the theme's bundle asset.
func WithBundle(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.bundle = trimmed
		}
	}
}

// WithTitle sets the page heading.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// WithIntro sets an HTML fragment shown above the form. It is sanitized
// before rendering.
func WithIntro(fragment string) Option {
	return func(cfg *config) {
		cfg.intro = fragment
	}
}
