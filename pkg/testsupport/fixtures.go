// Package testsupport holds fixtures shared by the package tests.
package testsupport

import (
	"testing"
	"time"

	"github.com/goliatone/go-supportform/pkg/demo"
	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/validation"
	"github.com/goliatone/go-supportform/pkg/view"
)

// Now is the fixed instant tests evaluate birth dates against.
var Now = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

// Clock returns Now.
func Clock() time.Time { return Now }

// Registry returns the support request registry pinned to Clock so date
// assertions do not drift.
func Registry() model.Registry {
	return model.SupportRequest(validation.WithClock(Clock))
}

// Fill writes values into the binding, failing the test when an id is not
// present in it.
func Fill(t *testing.T, b view.Binding, values map[string]string) {
	t.Helper()

	for id, value := range values {
		if !b.Has(id) {
			t.Fatalf("testsupport: binding has no element %q", id)
		}
		b.SetValue(id, value)
	}
}

// FillDemo writes the demo dataset into the binding.
func FillDemo(t *testing.T, b view.Binding) {
	t.Helper()
	Fill(t, b, demo.Dataset())
}
