package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-metadoc/internal/logging"
	internalParser "github.com/goliatone/go-metadoc/internal/metadata/parser"
	internalResolver "github.com/goliatone/go-metadoc/internal/metadata/resolver"
	"github.com/goliatone/go-metadoc/pkg/interfaces"
	"github.com/goliatone/go-metadoc/pkg/metadata"
	"github.com/goliatone/go-metadoc/pkg/render"
	"github.com/goliatone/go-metadoc/pkg/renderers/html"
	"github.com/goliatone/go-metadoc/pkg/renderers/markdown"
	tplrenderer "github.com/goliatone/go-metadoc/pkg/renderers/template"
)

const defaultRendererName = markdown.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithResolver injects a custom descriptor resolver.
func WithResolver(resolver metadata.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithParser injects a custom descriptor parser.
func WithParser(parser metadata.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithBasePath points the built-in resolver and parser at a metadata tree on
// disk.
func WithBasePath(path string) Option {
	return func(o *Orchestrator) {
		o.basePath = path
	}
}

// WithFileSystem supplies the metadata tree used by the built-in resolver and
// parser. It takes precedence over WithBasePath.
func WithFileSystem(files fs.FS) Option {
	return func(o *Orchestrator) {
		o.files = files
	}
}

// WithLogger sets the logger for the orchestrator and the built-in
// components.
func WithLogger(logger interfaces.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithStrict makes malformed descriptors abort the run instead of being
// skipped.
func WithStrict(strict bool) Option {
	return func(o *Orchestrator) {
		o.strict = strict
	}
}

// WithSanitizer is forwarded to the built-in renderers.
func WithSanitizer(sanitize render.Sanitizer) Option {
	return func(o *Orchestrator) {
		o.sanitize = sanitize
	}
}

// WithTemplatesDir is forwarded to the built-in template renderer.
func WithTemplatesDir(dir string) Option {
	return func(o *Orchestrator) {
		o.templatesDir = dir
	}
}

// Orchestrator coordinates the pipeline from descriptor tree to written
// documents. It applies sensible defaults (markdown renderer, descriptor tree
// under the working directory) while remaining open to dependency injection.
type Orchestrator struct {
	resolver        metadata.Resolver
	parser          metadata.Parser
	registry        *render.Registry
	defaultRenderer string
	basePath        string
	files           fs.FS
	logger          interfaces.Logger
	strict          bool
	sanitize        render.Sanitizer
	templatesDir    string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Document resolves and parses every descriptor of object, in resolution
// order. Inactive rules are left out. Malformed descriptors are skipped with a
// warning unless the orchestrator is strict.
func (o *Orchestrator) Document(ctx context.Context, object string) (metadata.DocumentationSet, error) {
	if ctx == nil {
		return metadata.DocumentationSet{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return metadata.DocumentationSet{}, err
	}
	if err := o.initialiseErr; err != nil {
		return metadata.DocumentationSet{}, err
	}

	resolution, err := o.resolver.Resolve(ctx, object)
	if err != nil {
		if goerrors.IsWrapped(err) {
			return metadata.DocumentationSet{}, err
		}
		return metadata.DocumentationSet{}, fmt.Errorf("orchestrator: resolve %s: %w", object, err)
	}

	set := metadata.DocumentationSet{Object: object}
	for _, descriptor := range resolution.Fields {
		record, err := o.parser.ParseField(ctx, descriptor.Path)
		if err != nil {
			if o.skippable(descriptor, err) {
				continue
			}
			return metadata.DocumentationSet{}, o.parseError(descriptor, err)
		}
		set.Fields = append(set.Fields, record)
	}
	for _, descriptor := range resolution.Rules {
		record, active, err := o.parser.ParseValidationRule(ctx, descriptor.Path)
		if err != nil {
			if o.skippable(descriptor, err) {
				continue
			}
			return metadata.DocumentationSet{}, o.parseError(descriptor, err)
		}
		if !active {
			o.logger.Debug("skipping inactive validation rule", "object", object, "path", descriptor.Path)
			continue
		}
		set.Rules = append(set.Rules, record)
	}

	o.logger.Debug("assembled documentation", "object", object, "fields", len(set.Fields), "rules", len(set.Rules))
	return set, nil
}

// Generate documents every selected object and writes one file per object to
// the request's output directory. Objects without documentation are reported
// in Result.Skipped. Files written before a fatal error stay listed in the
// returned Result.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}
	if err := req.Validate(); err != nil {
		return Result{}, goerrors.Wrap(err, goerrors.CategoryValidation, "orchestrator: invalid request").
			WithTextCode("INVALID_REQUEST")
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}
	if err := render.EnsureDir(req.OutputDir); err != nil {
		return Result{}, fmt.Errorf("orchestrator: %w", err)
	}

	objects, err := o.objectsFor(ctx, req.Objects)
	if err != nil {
		return Result{}, err
	}
	o.logger.Debug("generating documentation",
		"objects", req.Objects.String(), "count", len(objects), "output_dir", req.OutputDir, "renderer", renderer.Name())

	var result Result
	for _, object := range objects {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		o.logger.Debug("processing object", "object", object)
		set, err := o.Document(ctx, object)
		if err != nil {
			return result, err
		}
		if set.Empty() {
			advisory := metadata.NoDocumentationError{Object: object}
			o.logger.Debug("no documentation found", "object", object)
			result.Skipped = append(result.Skipped, advisory)
			continue
		}

		written, err := o.write(ctx, renderer, set, req.OutputDir)
		if err != nil {
			return result, err
		}
		result.Written = append(result.Written, written)
	}

	return result, nil
}

func (o *Orchestrator) write(ctx context.Context, renderer render.Renderer, set metadata.DocumentationSet, dir string) (WrittenFile, error) {
	output, err := renderer.Render(ctx, set)
	if err != nil {
		return WrittenFile{}, fmt.Errorf("orchestrator: render %s: %w", set.Object, err)
	}

	path, err := render.WriteFile(dir, render.FileName(renderer, set.Object), output)
	if err != nil {
		return WrittenFile{}, fmt.Errorf("orchestrator: %w", err)
	}

	o.logger.Debug("documentation written", "object", set.Object, "path", path)
	return WrittenFile{
		Object: set.Object,
		Path:   path,
		Fields: len(set.Fields),
		Rules:  len(set.Rules),
	}, nil
}

// skippable reports whether a parse failure is a malformed descriptor that
// lenient runs step over.
func (o *Orchestrator) skippable(descriptor metadata.Descriptor, err error) bool {
	if o.strict || !metadata.IsInvalidDescriptor(err) {
		return false
	}
	o.logger.Warn("skipping malformed descriptor", "object", descriptor.Object, "path", descriptor.Path, "error", err)
	return true
}

func (o *Orchestrator) parseError(descriptor metadata.Descriptor, err error) error {
	if metadata.IsInvalidDescriptor(err) {
		o.logger.Error("malformed descriptor", "object", descriptor.Object, "path", descriptor.Path, "error", err)
		return metadata.WrapInvalidDescriptor(err)
	}
	return fmt.Errorf("orchestrator: parse %s: %w", descriptor.Path, err)
}

func (o *Orchestrator) objectsFor(ctx context.Context, selection Selection) ([]string, error) {
	if !selection.All {
		return append([]string(nil), selection.Objects...), nil
	}
	objects, err := o.resolver.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: discover objects: %w", err)
	}
	return objects, nil
}

// Discover lists the objects available under the configured tree.
func (o *Orchestrator) Discover(ctx context.Context) ([]string, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.objectsFor(ctx, Selection{All: true})
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	o.logger = logging.OrNoOp(o.logger)

	if o.resolver == nil {
		o.resolver = internalResolver.New(metadata.NewResolverOptions(
			metadata.WithFileSystem(o.files),
			metadata.WithBasePath(o.basePathOrDefault()),
			metadata.WithResolverLogger(o.logger),
		))
	}
	if o.parser == nil {
		o.parser = internalParser.New(metadata.NewParserOptions(
			metadata.WithParserFileSystem(o.files),
			metadata.WithParserBasePath(o.basePathOrDefault()),
			metadata.WithParserLogger(o.logger),
		))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(markdown.New(markdown.WithSanitizer(o.sanitize)))
		o.registry.MustRegister(html.New(html.WithCellSanitizer(o.sanitize)))
		renderer, err := tplrenderer.New(
			tplrenderer.WithTemplatesDir(o.templatesDir),
			tplrenderer.WithSanitizer(o.sanitize),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: template renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}

func (o *Orchestrator) basePathOrDefault() string {
	if o.basePath == "" {
		return "."
	}
	return o.basePath
}
