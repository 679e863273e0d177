//go:build js && wasm

// Command support-form-wasm is the browser entry point of the support form
// controller. Build with GOOS=js GOARCH=wasm and load it from the host page.
package main

import (
	"log/slog"

	"github.com/goliatone/go-supportform/internal/dom"
	"github.com/goliatone/go-supportform/pkg/controller"
)

func main() {
	logger := slog.New(slog.NewTextHandler(dom.Console(), &slog.HandlerOptions{Level: slog.LevelInfo}))

	binding := dom.New()
	ctrl := controller.New(binding, controller.WithLogger(logger))
	if err := ctrl.Initialize(); err != nil {
		// Already logged to the console.
		return
	}

	select {}
}
