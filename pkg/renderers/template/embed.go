package template

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS returns the built-in documentation templates.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
