//go:build js && wasm

package dom

import (
	"strings"
	"syscall/js"
)

// Console returns a writer that forwards each write to console.log, so a
// slog handler can log into the browser's developer tools.
func Console() *ConsoleWriter {
	return &ConsoleWriter{console: js.Global().Get("console")}
}

// ConsoleWriter writes to the browser console.
type ConsoleWriter struct {
	console js.Value
}

func (w *ConsoleWriter) Write(p []byte) (int, error) {
	w.console.Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
