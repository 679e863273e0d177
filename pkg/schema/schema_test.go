package schema

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/validation"
)

func TestBuild_SupportRequest(t *testing.T) {
	doc, err := Build(context.Background(), model.SupportRequest())
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	ref, ok := doc.Components.Schemas[ComponentName]
	if !ok || ref.Value == nil {
		t.Fatalf("missing %s component", ComponentName)
	}
	request := ref.Value

	if diff := cmp.Diff(model.SupportRequest().IDs(), request.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if len(request.Properties) != 7 {
		t.Fatalf("expected 7 properties, got %d", len(request.Properties))
	}

	phone := request.Properties[model.FieldPhone].Value
	if phone.Pattern != validation.PhonePattern {
		t.Fatalf("phone pattern: %q", phone.Pattern)
	}
	if phone.Extensions[ValidatorExtension] != "phone" {
		t.Fatalf("phone validator extension: %v", phone.Extensions[ValidatorExtension])
	}

	birth := request.Properties[model.FieldBirthDate].Value
	if birth.Format != "date" {
		t.Fatalf("birth-date format: %q", birth.Format)
	}
	if birth.Title != "Date de naissance" {
		t.Fatalf("birth-date title: %q", birth.Title)
	}

	reason := request.Properties[model.FieldReason].Value
	if len(reason.Enum) != len(model.ReasonChoices) || reason.Enum[0] != "suspended" {
		t.Fatalf("reason enum: %v", reason.Enum)
	}
}

func TestMarshal_JSONAndYAML(t *testing.T) {
	doc, err := Build(context.Background(), model.SupportRequest(), WithInfo("Demande", "2.0.0"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	rawJSON, err := Marshal(doc, FormatJSON)
	if err != nil {
		t.Fatalf("marshal json: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(rawJSON, &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	info, _ := decoded["info"].(map[string]any)
	if info["title"] != "Demande" || info["version"] != "2.0.0" {
		t.Fatalf("unexpected info: %v", info)
	}

	rawYAML, err := Marshal(doc, FormatYAML)
	if err != nil {
		t.Fatalf("marshal yaml: %v", err)
	}
	var fromYAML map[string]any
	if err := yaml.Unmarshal(rawYAML, &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if fromYAML["openapi"] != "3.0.3" {
		t.Fatalf("unexpected openapi version: %v", fromYAML["openapi"])
	}
}

func TestMarshal_UnknownFormat(t *testing.T) {
	doc, err := Build(context.Background(), model.SupportRequest())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, err := Marshal(doc, "toml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
	if _, err := Marshal(nil, FormatJSON); err == nil {
		t.Fatalf("expected nil document error")
	}
}
