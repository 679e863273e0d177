// Package demo prefills the support request form with a fixed sample
// dataset when the page is opened with `?demo=1`.
package demo

import (
	"net/url"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/view"
)

const (
	// Param is the query parameter that enables seeding.
	Param = "demo"
	// EnabledValue is the only value that enables seeding.
	EnabledValue = "1"
)

var dataset = []struct {
	id    string
	value string
}{
	{model.FieldLastName, "Dupont"},
	{model.FieldFirstName, "Camille"},
	{model.FieldBirthDate, "1994-06-15"},
	{model.FieldBirthPlace, "Lyon"},
	{model.FieldAddress, "12 rue Exemple, 69000 Lyon"},
	{model.FieldPhone, "+33 6 12 34 56 78"},
	{model.FieldReason, "suspended"},
}

// Dataset returns a copy of the sample values keyed by field identifier.
func Dataset() map[string]string {
	out := make(map[string]string, len(dataset))
	for _, entry := range dataset {
		out[entry.id] = entry.value
	}
	return out
}

// Enabled reports whether rawURL carries demo=1. Unparseable URLs disable
// seeding.
func Enabled(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Query().Get(Param) == EnabledValue
}

// Seeder writes the sample dataset into a binding.
type Seeder struct{}

// New returns a Seeder.
func New() *Seeder {
	return &Seeder{}
}

// RunIfEnabled applies the dataset when the binding's location enables demo
// mode and reports whether it did.
func (s *Seeder) RunIfEnabled(b view.Binding) bool {
	if b == nil || !Enabled(b.Location()) {
		return false
	}
	s.Apply(b)
	return true
}

// Apply overwrites every field value with the dataset. Error slots and the
// status are left untouched.
func (s *Seeder) Apply(b view.Binding) {
	if b == nil {
		return
	}
	for _, entry := range dataset {
		b.SetValue(entry.id, entry.value)
	}
}
