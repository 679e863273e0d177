// Package schema exports the support request registry as an OpenAPI 3
// document so API clients and form tooling can share the field contract.
package schema

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/validation"
)

const (
	// ComponentName is the schema component describing a support request.
	ComponentName = "SupportRequest"
	// ValidatorExtension carries the validator kind of each property.
	ValidatorExtension = "x-validator"
	// LabelExtension keeps the display label next to the JSON Schema title.
	LabelExtension = "x-label"
)

// Format selects the serialization emitted by Marshal.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by Marshal for unsupported formats.
var ErrUnknownFormat = errors.New("schema: unknown format")

// Option configures Build.
type Option func(*config)

type config struct {
	title   string
	version string
}

// WithInfo overrides the document title and version.
func WithInfo(title, version string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
		if trimmed := strings.TrimSpace(version); trimmed != "" {
			cfg.version = trimmed
		}
	}
}

// Build produces a validated OpenAPI document with one component schema
// describing reg.
func Build(ctx context.Context, reg model.Registry, opts ...Option) (*openapi3.T, error) {
	cfg := config{title: "Support request", version: "1.0.0"}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	request := openapi3.NewObjectSchema()
	request.Title = cfg.title
	for _, field := range reg.Fields() {
		request.Properties[field.ID] = openapi3.NewSchemaRef("", property(field))
		request.Required = append(request.Required, field.ID)
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   cfg.title,
			Version: cfg.version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				ComponentName: openapi3.NewSchemaRef("", request),
			},
		},
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("schema: validate document: %w", err)
	}
	return doc, nil
}

func property(field model.Field) *openapi3.Schema {
	prop := openapi3.NewStringSchema().WithMinLength(1)
	prop.Title = field.Label
	prop.Extensions = map[string]any{
		LabelExtension: field.Label,
	}
	if kind := field.Kind(); kind != "" {
		prop.Extensions[ValidatorExtension] = string(kind)
	}

	switch field.Kind() {
	case validation.KindPhone:
		prop.Pattern = validation.PhonePattern
		prop.WithMinLength(6)
		prop.WithMaxLength(20)
	case validation.KindBirthDate:
		prop.Format = "date"
	}

	if len(field.Choices) > 0 {
		for _, choice := range field.Choices {
			prop.Enum = append(prop.Enum, choice.Value)
		}
	}
	return prop
}

// Marshal serializes doc as indented JSON or YAML.
func Marshal(doc *openapi3.T, format Format) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("schema: document is nil")
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("schema: marshal json: %w", err)
	}

	switch Format(strings.ToLower(string(format))) {
	case FormatJSON, "":
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return nil, fmt.Errorf("schema: indent json: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case FormatYAML:
		var generic any
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("schema: decode json: %w", err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return nil, fmt.Errorf("schema: marshal yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
