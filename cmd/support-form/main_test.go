package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck_DemoSubmission(t *testing.T) {
	out, err := execute(t, "check", "--url", "/?demo=1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "status [success]: Merci, votre demande a bien été enregistrée.") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCheck_EmptySubmission(t *testing.T) {
	out, err := execute(t, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "Téléphone (phone): Ce champ est obligatoire.") {
		t.Fatalf("expected phone error in output:\n%s", out)
	}
	if !strings.Contains(out, "status [error]") {
		t.Fatalf("expected error status:\n%s", out)
	}
}

func TestCheck_BrokenPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.html")
	if err := os.WriteFile(path, []byte(`<form id="support-form"></form>`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := execute(t, "check", "--file", path); err == nil {
		t.Fatalf("expected missing status element error")
	}
}

func TestSchema_YAML(t *testing.T) {
	out, err := execute(t, "schema", "--format", "yaml")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if !strings.Contains(out, "SupportRequest:") || !strings.Contains(out, "x-validator: birth-date") {
		t.Fatalf("unexpected schema output:\n%s", out)
	}
}
