// Package tui runs the support request form in a terminal. A Session is a
// view.Binding backed by an in-memory document: values come from prompts,
// and error slots and the status are printed after each submit.
package tui
