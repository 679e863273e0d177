package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocument_IgnoresUnknownElements(t *testing.T) {
	doc := NewDocument("https://example.test/", "name", "name-error")

	doc.SetValue("name", "Camille")
	doc.SetValue("ghost", "boo")
	doc.SetText("name-error", "oops")
	doc.SetText("ghost-error", "boo")

	if diff := cmp.Diff(map[string]string{"name": "Camille"}, doc.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"name-error": "oops"}, doc.Texts()); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
	if doc.Has("ghost") {
		t.Fatalf("expected ghost to be absent")
	}
}

func TestDocument_SubmitDispatchesHandlers(t *testing.T) {
	doc := NewDocument("")
	if doc.Submit() {
		t.Fatalf("expected default action to run without handlers")
	}

	calls := 0
	doc.OnSubmit(func(ev Event) {
		calls++
		ev.PreventDefault()
	})
	doc.OnSubmit(nil)

	if !doc.Submit() {
		t.Fatalf("expected default action to be prevented")
	}
	if calls != 1 || doc.Handlers() != 1 {
		t.Fatalf("unexpected handler state: calls=%d handlers=%d", calls, doc.Handlers())
	}
}

func TestNewSupportDocument_HasContractElements(t *testing.T) {
	doc := NewSupportDocument("/")
	for _, id := range []string{"support-form", "form-message", "phone", "phone-error", "reason-error"} {
		if !doc.Has(id) {
			t.Fatalf("expected element %q", id)
		}
	}

	doc.Remove("form-message")
	if doc.Has("form-message") {
		t.Fatalf("expected form-message removed")
	}
}

func TestStatus_Neutral(t *testing.T) {
	if !(Status{}).Neutral() {
		t.Fatalf("zero status should be neutral")
	}
	if (Status{Message: "x"}).Neutral() {
		t.Fatalf("status with message should not be neutral")
	}
}
