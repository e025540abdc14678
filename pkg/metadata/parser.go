package metadata

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-metadoc/pkg/interfaces"
)

// Parser extracts records from descriptor files.
type Parser interface {
	// ParseField reads a field descriptor. Missing elements become Placeholder.
	ParseField(ctx context.Context, path string) (FieldRecord, error)
	// ParseValidationRule reads a validation rule descriptor. The boolean is
	// false when the rule is inactive or carries no active flag, in which case
	// the record is the zero value.
	ParseValidationRule(ctx context.Context, path string) (ValidationRuleRecord, bool, error)
}

// ParserOptions exposes the parser toggles.
type ParserOptions struct {
	// FileSystem is the tree descriptor paths are resolved against. When nil,
	// BasePath is opened with os.DirFS.
	FileSystem fs.FS

	// BasePath is used when FileSystem is nil.
	BasePath string

	// TrimSpace trims surrounding whitespace from extracted text. Defaults to
	// true.
	TrimSpace bool

	// Logger receives one debug line per parsed descriptor.
	Logger interfaces.Logger
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithParserFileSystem injects the fs.FS descriptor paths are read from.
func WithParserFileSystem(files fs.FS) ParserOption {
	return func(opts *ParserOptions) {
		opts.FileSystem = files
	}
}

// WithParserBasePath points the parser at a directory on disk.
func WithParserBasePath(path string) ParserOption {
	return func(opts *ParserOptions) {
		opts.BasePath = path
	}
}

// WithTrimSpace toggles whitespace trimming of extracted text.
func WithTrimSpace(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.TrimSpace = enabled
	}
}

// WithParserLogger attaches a logger to the parser.
func WithParserLogger(logger interfaces.Logger) ParserOption {
	return func(opts *ParserOptions) {
		opts.Logger = logger
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		BasePath:  ".",
		TrimSpace: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
