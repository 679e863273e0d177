// Package page renders the HTML host page the browser form controller binds
// to. The page honours the DOM contract of the support request form: the
// form and status elements, one input per registry field and a sibling
// `{id}-error` slot for each. Templates are pongo2 files served from an
// fs.FS; colours come from a go-theme manifest exposed as CSS custom
// properties.
//
// Inspect parses any host page back into a view.Document so the contract
// can be checked without a browser.
package page
