package html

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-metadoc/pkg/metadata"
	"github.com/goliatone/go-metadoc/pkg/render"
	"github.com/goliatone/go-metadoc/pkg/renderers/markdown"
)

const (
	// Name identifies the renderer in a render.Registry.
	Name = "html"
	// Extension is appended to the object name when the document is written.
	Extension = ".html"
)

type Option func(*config)

type config struct {
	source     render.Renderer
	sanitize   render.Sanitizer
	articleCSS string
}

// WithSource replaces the Markdown renderer whose output is converted.
func WithSource(source render.Renderer) Option {
	return func(cfg *config) {
		if source != nil {
			cfg.source = source
		}
	}
}

// WithCellSanitizer is forwarded to the default Markdown source.
func WithCellSanitizer(sanitize render.Sanitizer) Option {
	return func(cfg *config) {
		cfg.sanitize = sanitize
	}
}

// WithArticleClass sets the class attribute of the wrapping <article>.
func WithArticleClass(class string) Option {
	return func(cfg *config) {
		cfg.articleCSS = class
	}
}

// Renderer converts the Markdown document into a standalone HTML fragment.
type Renderer struct {
	source render.Renderer
	engine goldmark.Markdown
	class  string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) *Renderer {
	cfg := config{articleCSS: "metadoc"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.source == nil {
		cfg.source = markdown.New(markdown.WithSanitizer(cfg.sanitize))
	}

	engine := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// Cells carry <br> line breaks; the converted document is scrubbed
		// afterwards.
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	return &Renderer{source: cfg.source, engine: engine, class: cfg.articleCSS}
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) Extension() string {
	return Extension
}

func (r *Renderer) Render(ctx context.Context, set metadata.DocumentationSet) ([]byte, error) {
	document, err := r.source.Render(ctx, set)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render markdown: %w", err)
	}

	var body bytes.Buffer
	if err := r.engine.Convert(document, &body); err != nil {
		return nil, fmt.Errorf("html renderer: convert: %w", err)
	}

	var out bytes.Buffer
	if r.class != "" {
		fmt.Fprintf(&out, "<article class=%q>\n", r.class)
	} else {
		out.WriteString("<article>\n")
	}
	out.Write(policy().SanitizeBytes(body.Bytes()))
	out.WriteString("</article>\n")
	return out.Bytes(), nil
}

var (
	policyOnce sync.Once
	ugcPolicy  *bluemonday.Policy
)

func policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
	})
	return ugcPolicy
}
