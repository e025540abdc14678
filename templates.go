package metadoc

import (
	"io/fs"

	tplrenderer "github.com/goliatone/go-metadoc/pkg/renderers/template"
)

// EmbeddedTemplates exposes the built-in documentation templates so callers
// can copy or extend them before pointing the template renderer at their own
// directory.
func EmbeddedTemplates() fs.FS {
	return tplrenderer.TemplatesFS()
}
