// Package view declares the seam between the form controller and whatever
// surface displays the form: the browser DOM, terminal prompts, or the
// in-memory Document used by tests and the page contract check.
package view

// Status is the aggregate message shown after a submit attempt. The zero
// value is the neutral state.
type Status struct {
	Message string
	IsError bool
}

// Neutral reports whether no message is displayed.
func (s Status) Neutral() bool {
	return s.Message == "" && !s.IsError
}

// Event is a submit event dispatched by a binding.
type Event interface {
	PreventDefault()
}

// SubmitHandler reacts to a submit event.
type SubmitHandler func(Event)

// Binding exposes the elements the controller reads and writes. Values are
// addressed by element identifier; Text addresses text-only elements such as
// error slots.
type Binding interface {
	Has(id string) bool
	Value(id string) string
	SetValue(id, value string)
	Text(id string) string
	SetText(id, text string)
	Status() Status
	SetStatus(status Status)
	OnSubmit(handler SubmitHandler)
	Location() string
}

// SubmitEvent is a minimal Event that records whether the default action was
// prevented.
type SubmitEvent struct {
	prevented bool
}

// PreventDefault marks the event's default action as suppressed.
func (e *SubmitEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *SubmitEvent) DefaultPrevented() bool {
	return e.prevented
}
