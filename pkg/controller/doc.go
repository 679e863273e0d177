// Package controller validates the support request form through a
// view.Binding. It binds to the form's submit event, writes one message per
// field into the `{id}-error` slots, and sets the aggregate status.
//
// The controller holds no form values of its own; every submit reads the
// binding afresh. It is not safe for concurrent use, matching the single
// event loop that drives it.
package controller
