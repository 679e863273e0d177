// Package model defines the support request field registry shared by the
// form controller and the demo seeder. The registry is an ordered, immutable
// list of field descriptors; element identifiers follow the host page
// contract (`{id}` for the input, `{id}-error` for its message slot).
package model
