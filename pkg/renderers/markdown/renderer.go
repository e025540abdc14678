package markdown

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-metadoc/pkg/metadata"
	"github.com/goliatone/go-metadoc/pkg/render"
)

const (
	// Name identifies the renderer in a render.Registry.
	Name = "markdown"
	// Extension is appended to the object name when the document is written.
	Extension = ".md"
)

type Option func(*Renderer)

// WithSanitizer rewrites every cell value before it is escaped.
func WithSanitizer(sanitize render.Sanitizer) Option {
	return func(r *Renderer) {
		r.sanitize = sanitize
	}
}

// Renderer writes a DocumentationSet as a Markdown document with a Fields
// table and, when active rules exist, a Validation Rules table.
type Renderer struct {
	sanitize render.Sanitizer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Markdown renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) Extension() string {
	return Extension
}

func (r *Renderer) Render(ctx context.Context, set metadata.DocumentationSet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}
	if set.Object == "" {
		return nil, fmt.Errorf("markdown renderer: object name is required")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s Documentation\n\n", set.Object)

	buf.WriteString("## Fields\n\n")
	buf.WriteString("| Label | API Name | Type |\n")
	buf.WriteString("|-------|----------|------|\n")
	for _, field := range set.Fields {
		r.row(&buf, field.Label, field.APIName, field.Type)
	}

	if set.HasRules() {
		buf.WriteString("\n## Validation Rules\n\n")
		buf.WriteString("| Name | Description | Formula |\n")
		buf.WriteString("|------|-------------|---------|\n")
		for _, rule := range set.Rules {
			r.row(&buf, rule.Name, rule.Description, rule.Formula)
		}
	}

	return buf.Bytes(), nil
}

func (r *Renderer) row(buf *bytes.Buffer, cells ...string) {
	buf.WriteString("|")
	for _, cell := range cells {
		buf.WriteString(" ")
		buf.WriteString(r.cell(cell))
		buf.WriteString(" |")
	}
	buf.WriteString("\n")
}

func (r *Renderer) cell(value string) string {
	if r.sanitize != nil {
		value = r.sanitize(value)
		if strings.TrimSpace(value) == "" {
			value = metadata.Placeholder
		}
	}
	return render.EscapeCell(value)
}
