package orchestrator

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-metadoc/pkg/metadata"
)

// Request describes one documentation run.
type Request struct {
	// Objects selects which objects to document.
	Objects Selection

	// OutputDir receives one document per object. It is created when missing.
	OutputDir string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string
}

// Validate ensures the request names a destination and at least one object.
func (req Request) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.OutputDir, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("metadoc.request.output_dir_required", "output directory is required")
			}
			return nil
		})),
		validation.Field(&req.Objects, validation.By(func(value any) error {
			if value.(Selection).Empty() {
				return validation.NewError("metadoc.request.objects_required", "at least one object is required")
			}
			return nil
		})),
	)
}

// WrittenFile records a document written to disk.
type WrittenFile struct {
	Object string `json:"object"`
	Path   string `json:"path"`
	Fields int    `json:"fields"`
	Rules  int    `json:"rules"`
}

// Result summarises a Generate run. Skipped lists objects that produced no
// document because they had neither fields nor active rules.
type Result struct {
	Written []WrittenFile                   `json:"written,omitempty"`
	Skipped []metadata.NoDocumentationError `json:"skipped,omitempty"`
}
