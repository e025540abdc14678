package metadata

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-metadoc/pkg/interfaces"
)

// Resolver locates descriptor files for objects under a base path.
// Implementations live under internal/metadata but satisfy this contract.
type Resolver interface {
	// Resolve returns the field and validation rule candidates for object.
	// Missing directories yield empty lists, never an error.
	Resolve(ctx context.Context, object string) (Resolution, error)
	// Descriptors enumerates candidates of a single kind.
	Descriptors(ctx context.Context, object string, kind Kind) ([]Descriptor, error)
	// Discover lists every object directory under the objects root. A missing
	// root yields an empty list.
	Discover(ctx context.Context) ([]string, error)
}

// ResolverOptions configures how a Resolver reaches the descriptor tree.
type ResolverOptions struct {
	// FileSystem is the tree rooted at the base path. When nil, BasePath is
	// opened with os.DirFS.
	FileSystem fs.FS

	// BasePath is the directory holding the objects/ subtree. Ignored when
	// FileSystem is set.
	BasePath string

	// Logger receives debug lines for every resolution step. Nil disables
	// logging.
	Logger interfaces.Logger
}

// ResolverOption mutates ResolverOptions prior to construction.
type ResolverOption func(*ResolverOptions)

// WithFileSystem injects an fs.FS rooted at the base path.
func WithFileSystem(files fs.FS) ResolverOption {
	return func(opts *ResolverOptions) {
		opts.FileSystem = files
	}
}

// WithBasePath points the resolver at a directory on disk.
func WithBasePath(path string) ResolverOption {
	return func(opts *ResolverOptions) {
		opts.BasePath = path
	}
}

// WithResolverLogger attaches a logger to the resolver.
func WithResolverLogger(logger interfaces.Logger) ResolverOption {
	return func(opts *ResolverOptions) {
		opts.Logger = logger
	}
}

// NewResolverOptions applies a set of ResolverOption values and returns the
// resulting configuration.
func NewResolverOptions(options ...ResolverOption) ResolverOptions {
	cfg := ResolverOptions{BasePath: "."}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level metadoc package to prevent import cycles.
