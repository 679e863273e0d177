// Package validation implements the closed set of field validators used by
// the support request form. Validators take an already trimmed value and
// return a Result: the empty Result means the value is valid, anything else
// is the message shown next to the field.
package validation
