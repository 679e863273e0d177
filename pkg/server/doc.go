// Package server hosts the support form page and the compiled controller
// bundle over HTTP. It serves static content only: form data never reaches
// the server, validation happens in the browser.
package server
