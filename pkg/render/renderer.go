package render

import (
	"context"

	"github.com/goliatone/go-metadoc/pkg/metadata"
)

// Renderer converts a DocumentationSet into a document (Markdown, HTML, ...).
type Renderer interface {
	// Name identifies the renderer in a Registry.
	Name() string
	// Extension is the file extension, including the dot, used when the
	// rendered document is written to disk.
	Extension() string
	Render(ctx context.Context, set metadata.DocumentationSet) ([]byte, error)
}

// FileName returns the output file name for object rendered by r.
func FileName(r Renderer, object string) string {
	ext := ".md"
	if r != nil && r.Extension() != "" {
		ext = r.Extension()
	}
	return object + ext
}
