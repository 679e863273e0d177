//go:build js && wasm

// Package dom binds the form controller to the browser DOM through
// syscall/js.
package dom

import (
	"syscall/js"

	"github.com/goliatone/go-supportform/pkg/model"
	"github.com/goliatone/go-supportform/pkg/view"
)

// Binding is a view.Binding over the live document.
type Binding struct {
	window   js.Value
	document js.Value
	funcs    []js.Func
}

var _ view.Binding = (*Binding)(nil)

// New binds to the global window and document.
func New() *Binding {
	window := js.Global()
	return &Binding{
		window:   window,
		document: window.Get("document"),
	}
}

func (b *Binding) element(id string) (js.Value, bool) {
	el := b.document.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, false
	}
	return el, true
}

func (b *Binding) Has(id string) bool {
	_, ok := b.element(id)
	return ok
}

func (b *Binding) Value(id string) string {
	el, ok := b.element(id)
	if !ok {
		return ""
	}
	return el.Get("value").String()
}

func (b *Binding) SetValue(id, value string) {
	if el, ok := b.element(id); ok {
		el.Set("value", value)
	}
}

func (b *Binding) Text(id string) string {
	el, ok := b.element(id)
	if !ok {
		return ""
	}
	return el.Get("textContent").String()
}

func (b *Binding) SetText(id, text string) {
	if el, ok := b.element(id); ok {
		el.Set("textContent", text)
	}
}

func (b *Binding) Status() view.Status {
	el, ok := b.element(model.StatusID)
	if !ok {
		return view.Status{}
	}
	return view.Status{
		Message: el.Get("textContent").String(),
		IsError: el.Get("classList").Call("contains", model.StatusErrorClass).Bool(),
	}
}

func (b *Binding) SetStatus(status view.Status) {
	el, ok := b.element(model.StatusID)
	if !ok {
		return
	}
	el.Set("textContent", status.Message)
	el.Get("classList").Call("toggle", model.StatusErrorClass, status.IsError)
}

func (b *Binding) OnSubmit(handler view.SubmitHandler) {
	form, ok := b.element(model.FormID)
	if !ok || handler == nil {
		return
	}
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			handler(event{value: args[0]})
		}
		return nil
	})
	b.funcs = append(b.funcs, fn)
	form.Call("addEventListener", "submit", fn)
}

func (b *Binding) Location() string {
	return b.window.Get("location").Get("href").String()
}

// Release frees the callbacks registered by OnSubmit. The binding must not
// dispatch events afterwards.
func (b *Binding) Release() {
	for _, fn := range b.funcs {
		fn.Release()
	}
	b.funcs = nil
}

type event struct {
	value js.Value
}

func (e event) PreventDefault() {
	e.value.Call("preventDefault")
}
