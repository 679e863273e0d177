package model

import (
	"github.com/goliatone/go-supportform/pkg/validation"
)

const (
	// FormID identifies the form element that receives submit events.
	FormID = "support-form"
	// StatusID identifies the aggregate status element.
	StatusID = "form-message"
	// StatusErrorClass is toggled on the status element while it shows an
	// error.
	StatusErrorClass = "form__message--error"
	// ErrorSuffix is appended to a field identifier to locate its error slot.
	ErrorSuffix = "-error"
)

// Field identifiers of the support request form.
const (
	FieldLastName   = "last-name"
	FieldFirstName  = "first-name"
	FieldBirthDate  = "birth-date"
	FieldBirthPlace = "birth-place"
	FieldAddress    = "address"
	FieldPhone      = "phone"
	FieldReason     = "reason"
)

// Aggregate status messages.
const (
	MessageSuccess   = "Merci, votre demande a bien été enregistrée."
	MessageFormError = "Merci de corriger les champs en erreur."
)

// Choice is one selectable value of a field rendered as a list.
type Choice struct {
	Value string
	Label string
}

// Field describes one form field. Fields with Choices render as a select.
type Field struct {
	ID        string
	Label     string
	Validator validation.Validator
	Choices   []Choice
}

// ReasonChoices lists the request reasons offered by the host page.
var ReasonChoices = []Choice{
	{Value: "suspended", Label: "Ligne suspendue"},
	{Value: "billing", Label: "Facturation"},
	{Value: "technical", Label: "Problème technique"},
	{Value: "other", Label: "Autre demande"},
}

// Kind reports the validator kind, or the empty kind when no validator is
// attached.
func (f Field) Kind() validation.Kind {
	if f.Validator == nil {
		return ""
	}
	return f.Validator.Kind()
}

// ErrorID returns the identifier of the field's error slot.
func (f Field) ErrorID() string {
	return ErrorID(f.ID)
}

// ErrorID returns the error slot identifier for a field identifier.
func ErrorID(fieldID string) string {
	return fieldID + ErrorSuffix
}

// Registry is an ordered, read-only list of fields.
type Registry struct {
	fields []Field
}

// NewRegistry copies fields into a registry, preserving order.
func NewRegistry(fields ...Field) Registry {
	return Registry{fields: append([]Field(nil), fields...)}
}

// SupportRequest returns the seven-field registry of the support request
// form. Date options are forwarded to the birth date validator.
func SupportRequest(opts ...validation.DateOption) Registry {
	return NewRegistry(
		Field{ID: FieldLastName, Label: "Nom", Validator: validation.Required()},
		Field{ID: FieldFirstName, Label: "Prénom", Validator: validation.Required()},
		Field{ID: FieldBirthDate, Label: "Date de naissance", Validator: validation.BirthDate(opts...)},
		Field{ID: FieldBirthPlace, Label: "Lieu de naissance", Validator: validation.Required()},
		Field{ID: FieldAddress, Label: "Adresse", Validator: validation.Required()},
		Field{ID: FieldPhone, Label: "Téléphone", Validator: validation.Phone()},
		Field{ID: FieldReason, Label: "Motif", Validator: validation.Required(), Choices: append([]Choice(nil), ReasonChoices...)},
	)
}

// ChoiceIndex returns the index of value among the field's choices, or -1.
func (f Field) ChoiceIndex(value string) int {
	for i, choice := range f.Choices {
		if choice.Value == value {
			return i
		}
	}
	return -1
}

// Fields returns a copy of the registry entries in order.
func (r Registry) Fields() []Field {
	return append([]Field(nil), r.fields...)
}

// Len reports the number of fields.
func (r Registry) Len() int {
	return len(r.fields)
}

// Lookup finds a field by identifier.
func (r Registry) Lookup(id string) (Field, bool) {
	for _, field := range r.fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}

// IDs returns the field identifiers in order.
func (r Registry) IDs() []string {
	out := make([]string, 0, len(r.fields))
	for _, field := range r.fields {
		out = append(out, field.ID)
	}
	return out
}

// ElementIDs returns every element identifier the host page must provide:
// the form, the status element, then each field and its error slot.
func (r Registry) ElementIDs() []string {
	out := make([]string, 0, 2+2*len(r.fields))
	out = append(out, FormID, StatusID)
	for _, field := range r.fields {
		out = append(out, field.ID, field.ErrorID())
	}
	return out
}
