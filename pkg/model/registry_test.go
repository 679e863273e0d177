package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-supportform/pkg/validation"
)

func TestSupportRequest_Order(t *testing.T) {
	reg := SupportRequest()

	want := []string{"last-name", "first-name", "birth-date", "birth-place", "address", "phone", "reason"}
	if diff := cmp.Diff(want, reg.IDs()); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	labels := make([]string, 0, reg.Len())
	kinds := make([]validation.Kind, 0, reg.Len())
	for _, field := range reg.Fields() {
		labels = append(labels, field.Label)
		kinds = append(kinds, field.Kind())
	}
	wantLabels := []string{"Nom", "Prénom", "Date de naissance", "Lieu de naissance", "Adresse", "Téléphone", "Motif"}
	if diff := cmp.Diff(wantLabels, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	wantKinds := []validation.Kind{
		validation.KindRequired, validation.KindRequired, validation.KindBirthDate,
		validation.KindRequired, validation.KindRequired, validation.KindPhone, validation.KindRequired,
	}
	if diff := cmp.Diff(wantKinds, kinds); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_FieldsReturnsCopy(t *testing.T) {
	reg := SupportRequest()
	fields := reg.Fields()
	fields[0].ID = "mutated"

	if got := reg.Fields()[0].ID; got != FieldLastName {
		t.Fatalf("registry mutated through Fields(): %s", got)
	}
}

func TestRegistry_LookupAndElementIDs(t *testing.T) {
	reg := SupportRequest()

	field, ok := reg.Lookup(FieldPhone)
	if !ok || field.Label != "Téléphone" {
		t.Fatalf("lookup phone: %+v %v", field, ok)
	}
	if _, ok := reg.Lookup("email"); ok {
		t.Fatalf("expected unknown field lookup to fail")
	}
	if got := field.ErrorID(); got != "phone-error" {
		t.Fatalf("error id: %s", got)
	}

	ids := reg.ElementIDs()
	if len(ids) != 16 {
		t.Fatalf("expected 16 element ids, got %d", len(ids))
	}
	if ids[0] != FormID || ids[1] != StatusID {
		t.Fatalf("unexpected leading ids: %v", ids[:2])
	}
}

func TestReasonChoices(t *testing.T) {
	field, ok := SupportRequest().Lookup(FieldReason)
	if !ok {
		t.Fatalf("reason field missing")
	}
	if idx := field.ChoiceIndex("suspended"); idx != 0 {
		t.Fatalf("expected suspended at index 0, got %d", idx)
	}
	if idx := field.ChoiceIndex("unknown"); idx != -1 {
		t.Fatalf("expected -1 for unknown choice, got %d", idx)
	}
	if phone, _ := SupportRequest().Lookup(FieldPhone); len(phone.Choices) != 0 {
		t.Fatalf("phone should not have choices")
	}
}
