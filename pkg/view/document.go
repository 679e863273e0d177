package view

import (
	"sync"

	"github.com/goliatone/go-supportform/pkg/model"
)

// Document is an in-memory Binding. Reads and writes on unknown identifiers
// are ignored, as a missing DOM node would be.
type Document struct {
	mu       sync.RWMutex
	location string
	elements map[string]struct{}
	values   map[string]string
	texts    map[string]string
	status   Status
	handlers []SubmitHandler
}

var _ Binding = (*Document)(nil)

// NewDocument creates a document located at rawURL containing the given
// element identifiers.
func NewDocument(rawURL string, ids ...string) *Document {
	doc := &Document{
		location: rawURL,
		elements: make(map[string]struct{}, len(ids)),
		values:   make(map[string]string),
		texts:    make(map[string]string),
	}
	for _, id := range ids {
		doc.elements[id] = struct{}{}
	}
	return doc
}

// NewSupportDocument creates a document carrying every element of the
// support request form.
func NewSupportDocument(rawURL string) *Document {
	return NewDocument(rawURL, model.SupportRequest().ElementIDs()...)
}

// Add registers additional element identifiers.
func (d *Document) Add(ids ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		d.elements[id] = struct{}{}
	}
}

// Remove deletes element identifiers along with their content.
func (d *Document) Remove(ids ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, id := range ids {
		delete(d.elements, id)
		delete(d.values, id)
		delete(d.texts, id)
	}
}

func (d *Document) Has(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.elements[id]
	return ok
}

func (d *Document) Value(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.values[id]
}

func (d *Document) SetValue(id, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		return
	}
	d.values[id] = value
}

func (d *Document) Text(id string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.texts[id]
}

func (d *Document) SetText(id, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.elements[id]; !ok {
		return
	}
	d.texts[id] = text
}

func (d *Document) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

func (d *Document) SetStatus(status Status) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = status
}

func (d *Document) OnSubmit(handler SubmitHandler) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

func (d *Document) Location() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.location
}

// Submit dispatches a submit event to every bound handler and reports
// whether the default action was prevented.
func (d *Document) Submit() bool {
	d.mu.RLock()
	handlers := append([]SubmitHandler(nil), d.handlers...)
	d.mu.RUnlock()

	event := &SubmitEvent{}
	for _, handler := range handlers {
		handler(event)
	}
	return event.DefaultPrevented()
}

// Handlers reports how many submit handlers are bound.
func (d *Document) Handlers() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers)
}

// Values returns a copy of every stored value.
func (d *Document) Values() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.values))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Texts returns a copy of every stored text.
func (d *Document) Texts() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.texts))
	for k, v := range d.texts {
		out[k] = v
	}
	return out
}
