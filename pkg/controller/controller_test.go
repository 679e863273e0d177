package controller

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-supportform/pkg/demo"
	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/testsupport"
	"github.com/goliatone/go-supportform/pkg/validation"
	"github.com/goliatone/go-supportform/pkg/view"
)

func TestValidateField_WritesErrorSlot(t *testing.T) {
	doc := view.NewSupportDocument("/")
	ctrl := New(doc)

	doc.SetValue("phone", "  123  ")
	if ctrl.ValidateField("phone", validation.Phone()) {
		t.Fatalf("expected phone to be invalid")
	}
	if got := doc.Text("phone-error"); got != validation.MessagePhone {
		t.Fatalf("phone error: %q", got)
	}

	doc.SetValue("phone", " +33 6 12 34 56 78 ")
	if !ctrl.ValidateField("phone", validation.Phone()) {
		t.Fatalf("expected trimmed phone to be valid")
	}
	if got := doc.Text("phone-error"); got != "" {
		t.Fatalf("expected phone error cleared, got %q", got)
	}
}

func TestValidateField_TrimsBeforeRequired(t *testing.T) {
	doc := view.NewSupportDocument("/")
	doc.SetValue("last-name", "   ")

	if New(doc).ValidateField("last-name", validation.Required()) {
		t.Fatalf("whitespace-only value must be rejected")
	}
	if got := doc.Text("last-name-error"); got != validation.MessageRequired {
		t.Fatalf("last-name error: %q", got)
	}
}

func TestValidateForm_EmptyFormPopulatesEverySlot(t *testing.T) {
	doc := view.NewSupportDocument("/")
	ctrl := New(doc, WithRegistry(testsupport.Registry()))

	if ctrl.ValidateForm() {
		t.Fatalf("expected empty form to be invalid")
	}

	want := map[string]string{}
	for _, id := range model.SupportRequest().IDs() {
		want[id] = validation.MessageRequired
	}
	if diff := cmp.Diff(want, ctrl.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateForm_DoesNotShortCircuit(t *testing.T) {
	doc := view.NewSupportDocument("/")
	testsupport.FillDemo(t, doc)
	doc.SetValue("last-name", "")
	doc.SetValue("phone", "123")
	doc.SetValue("birth-date", "2030-01-01")

	ctrl := New(doc, WithRegistry(testsupport.Registry()))
	if ctrl.ValidateForm() {
		t.Fatalf("expected invalid form")
	}

	want := map[string]string{
		"last-name":  validation.MessageRequired,
		"birth-date": validation.MessageDate,
		"phone":      validation.MessagePhone,
	}
	if diff := cmp.Diff(want, ctrl.Errors()); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestClearErrorsThenValidateValidForm(t *testing.T) {
	doc := view.NewSupportDocument("/")
	ctrl := New(doc, WithRegistry(testsupport.Registry()))

	ctrl.ValidateForm()
	testsupport.FillDemo(t, doc)
	ctrl.ClearErrors()

	for _, field := range ctrl.Registry().Fields() {
		if got := doc.Text(field.ErrorID()); got != "" {
			t.Fatalf("expected %s cleared, got %q", field.ErrorID(), got)
		}
	}
	if !ctrl.ValidateForm() {
		t.Fatalf("expected demo data to validate, errors: %v", ctrl.Errors())
	}
	for _, field := range ctrl.Registry().Fields() {
		if got := doc.Text(field.ErrorID()); got != "" {
			t.Fatalf("expected %s empty, got %q", field.ErrorID(), got)
		}
	}
}

func TestHandleSubmit_SuccessAndError(t *testing.T) {
	doc := view.NewSupportDocument("/")
	ctrl := New(doc, WithRegistry(testsupport.Registry()))

	if ctrl.Result() != OutcomeNeutral {
		t.Fatalf("expected neutral state before submit")
	}

	event := &view.SubmitEvent{}
	ctrl.HandleSubmit(event)
	if !event.DefaultPrevented() {
		t.Fatalf("expected default action to be prevented")
	}
	if diff := cmp.Diff(view.Status{Message: model.MessageFormError, IsError: true}, doc.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
	if ctrl.Result() != OutcomeError {
		t.Fatalf("expected error outcome")
	}

	testsupport.FillDemo(t, doc)
	ctrl.HandleSubmit(&view.SubmitEvent{})
	if diff := cmp.Diff(view.Status{Message: model.MessageSuccess}, doc.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
	if ctrl.Result() != OutcomeSuccess {
		t.Fatalf("expected success outcome")
	}
	if errs := ctrl.Errors(); len(errs) != 0 {
		t.Fatalf("expected stale errors cleared, got %v", errs)
	}
}

func TestInitialize_BindsSubmitAndSeeds(t *testing.T) {
	doc := view.NewSupportDocument("https://example.test/?demo=1")
	ctrl := New(doc, WithRegistry(testsupport.Registry()))

	if err := ctrl.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if diff := cmp.Diff(demo.Dataset(), doc.Values()); diff != "" {
		t.Fatalf("demo values mismatch (-want +got):\n%s", diff)
	}
	if !doc.Status().Neutral() {
		t.Fatalf("seeding must not set a status")
	}

	if !doc.Submit() {
		t.Fatalf("expected submit default to be prevented")
	}
	if diff := cmp.Diff(view.Status{Message: model.MessageSuccess}, doc.Status()); diff != "" {
		t.Fatalf("status mismatch (-want +got):\n%s", diff)
	}
	if errs := ctrl.Errors(); len(errs) != 0 {
		t.Fatalf("expected no field errors, got %v", errs)
	}
}

func TestInitialize_WithoutDemoFlagLeavesFieldsEmpty(t *testing.T) {
	doc := view.NewSupportDocument("https://example.test/")
	if err := New(doc).Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if len(doc.Values()) != 0 {
		t.Fatalf("expected no values, got %v", doc.Values())
	}
}

func TestInitialize_MissingElements(t *testing.T) {
	for _, missing := range []string{model.FormID, model.StatusID} {
		t.Run(missing, func(t *testing.T) {
			doc := view.NewSupportDocument("https://example.test/?demo=1")
			doc.Remove(missing)

			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))

			err := New(doc, WithLogger(logger)).Initialize()
			if !errors.Is(err, ErrMissingElement) {
				t.Fatalf("expected ErrMissingElement, got %v", err)
			}
			if !strings.Contains(err.Error(), missing) {
				t.Fatalf("expected error to name %q, got %v", missing, err)
			}
			if doc.Handlers() != 0 {
				t.Fatalf("expected no submit handler bound")
			}
			if len(doc.Values()) != 0 {
				t.Fatalf("expected no seeding, got %v", doc.Values())
			}
			if !strings.Contains(logs.String(), "missing="+missing) {
				t.Fatalf("expected warning naming %q, got %q", missing, logs.String())
			}
		})
	}
}

func TestInitialize_SeederDisabled(t *testing.T) {
	doc := view.NewSupportDocument("https://example.test/?demo=1")
	if err := New(doc, WithSeeder(nil)).Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if len(doc.Values()) != 0 {
		t.Fatalf("expected seeding disabled, got %v", doc.Values())
	}
}
