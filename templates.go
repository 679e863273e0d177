package supportform

import (
	"io/fs"

	"github.com/goliatone/go-supportform/pkg/renderers/page"
)

// EmbeddedTemplates exposes the built-in host page templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	fsys := page.TemplatesFS()
	return fsys
}
