package page

import (
	"fmt"
	"path"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme keys read from the manifest.
const (
	ThemeTemplateKey = "page.support"
	ThemeBundleKey   = "page.bundle"
	ThemeLoaderKey   = "page.loader"
)

// DefaultLoader is the Go wasm loader script shipped next to the bundle.
const DefaultLoader = "wasm_exec.js"

// DefaultManifest returns the built-in theme with a light default palette
// and a dark variant. Assets carry no prefix so the renderer's asset prefix
// applies.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "support",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":      "#1f4e79",
			"error":      "#b00020",
			"success":    "#1b7f3b",
			"text":       "#1d1d1f",
			"background": "#ffffff",
		},
		Templates: map[string]string{
			ThemeTemplateKey: DefaultTemplate,
		},
		Assets: theme.Assets{
			Files: map[string]string{
				ThemeBundleKey: DefaultBundle,
				ThemeLoaderKey: DefaultLoader,
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand":      "#8ab4f8",
					"error":      "#f28b82",
					"success":    "#81c995",
					"text":       "#e8eaed",
					"background": "#202124",
				},
			},
		},
	}
}

type cssVar struct {
	Name  string
	Value string
}

// selectTheme registers the manifest and selects the variant. The manifest
// is copied first: an empty asset prefix takes assetPrefix and a non-empty
// bundle replaces the bundle asset. An unknown variant is an error so typos
// in configuration surface early.
func selectTheme(manifest *theme.Manifest, variant, assetPrefix, bundle string) (*theme.Selection, error) {
	if manifest == nil {
		return nil, fmt.Errorf("page: theme manifest is nil")
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("page: unknown theme variant %q", variant)
		}
	}

	selected := *manifest
	files := make(map[string]string, len(manifest.Assets.Files)+1)
	for key, value := range manifest.Assets.Files {
		files[key] = value
	}
	if bundle != "" {
		files[ThemeBundleKey] = bundle
	}
	selected.Assets = theme.Assets{Prefix: manifest.Assets.Prefix, Files: files}
	if strings.TrimSpace(selected.Assets.Prefix) == "" {
		selected.Assets.Prefix = assetPrefix
	}

	provider := theme.NewRegistry()
	if err := provider.Register(&selected); err != nil {
		return nil, fmt.Errorf("page: register theme: %w", err)
	}
	selector := theme.Selector{Registry: provider, DefaultTheme: selected.Name}
	selection, err := selector.Select(selected.Name, variant)
	if err != nil {
		return nil, fmt.Errorf("page: select theme: %w", err)
	}
	return selection, nil
}

// assetURL resolves key through the selection, falling back to fallback
// under prefix.
func assetURL(selection *theme.Selection, key, prefix, fallback string) string {
	if url, ok := selection.Asset(key); ok {
		return url
	}
	return path.Join(prefix, fallback)
}

// cssVars sorts the selection's custom properties. Entries that could break
// out of the declaration are dropped.
func cssVars(vars map[string]string) []cssVar {
	keys := make([]string, 0, len(vars))
	for key, value := range vars {
		if strings.TrimSpace(strings.TrimPrefix(key, "--")) == "" {
			continue
		}
		if strings.ContainsAny(key, ";{}<>: ") || strings.ContainsAny(value, ";{}<>") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]cssVar, 0, len(keys))
	for _, key := range keys {
		out = append(out, cssVar{Name: key, Value: vars[key]})
	}
	return out
}
