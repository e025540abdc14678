package template

import (
	"context"
	"fmt"
	"io/fs"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-metadoc/pkg/metadata"
	"github.com/goliatone/go-metadoc/pkg/render"
	rendertemplate "github.com/goliatone/go-metadoc/pkg/render/template"
	gotemplate "github.com/goliatone/go-metadoc/pkg/render/template/gotemplate"
)

const (
	// Name identifies the renderer in a render.Registry.
	Name = "template"
	// DocumentTemplate is resolved first from the user directory, then from
	// the embedded bundle.
	DocumentTemplate = "templates/documentation.md.tpl"
	// CellFilter escapes a value for a Markdown table cell.
	CellFilter = "cell"
)

type Option func(*config)

type config struct {
	templatesDir     string
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	extension        string
	sanitize         render.Sanitizer
}

// WithTemplatesDir loads templates from a directory on disk. The directory is
// expected to mirror the embedded layout (templates/documentation.md.tpl);
// templates it lacks fall back to the embedded ones.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(path)
	}
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithExtension overrides the output file extension.
func WithExtension(ext string) Option {
	return func(cfg *config) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.extension = ext
	}
}

// WithSanitizer rewrites every cell value before it reaches the template.
func WithSanitizer(sanitize render.Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitize = sanitize
	}
}

// Renderer produces documentation by executing a pongo2 template.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	extension string
	sanitize  render.Sanitizer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the template renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), extension: ".md"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templatesDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
			gotemplate.WithFilters(map[string]pongo2.FilterFunction{
				CellFilter: filterCell,
			}),
		)
		if err != nil {
			return nil, fmt.Errorf("template renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		extension: cfg.extension,
		sanitize:  cfg.sanitize,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) Extension() string {
	return r.extension
}

func (r *Renderer) Render(ctx context.Context, set metadata.DocumentationSet) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("template renderer: %w", err)
	}
	if r.templates == nil {
		return nil, fmt.Errorf("template renderer: template renderer is nil")
	}
	if set.Object == "" {
		return nil, fmt.Errorf("template renderer: object name is required")
	}

	result, err := r.templates.RenderTemplate(DocumentTemplate, r.data(set))
	if err != nil {
		return nil, fmt.Errorf("template renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) data(set metadata.DocumentationSet) map[string]any {
	fields := make([]map[string]any, 0, len(set.Fields))
	for _, field := range set.Fields {
		fields = append(fields, map[string]any{
			"label":    r.clean(field.Label),
			"api_name": r.clean(field.APIName),
			"type":     r.clean(field.Type),
		})
	}

	rules := make([]map[string]any, 0, len(set.Rules))
	for _, rule := range set.Rules {
		rules = append(rules, map[string]any{
			"name":        r.clean(rule.Name),
			"description": r.clean(rule.Description),
			"formula":     r.clean(rule.Formula),
		})
	}

	return map[string]any{
		"object": set.Object,
		"fields": fields,
		"rules":  rules,
	}
}

func (r *Renderer) clean(value string) string {
	if r.sanitize == nil {
		return value
	}
	if cleaned := r.sanitize(value); strings.TrimSpace(cleaned) != "" {
		return cleaned
	}
	return metadata.Placeholder
}

func filterCell(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(render.EscapeCell(in.String())), nil
}
