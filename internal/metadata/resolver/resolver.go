package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-metadoc/internal/logging"
	"github.com/goliatone/go-metadoc/pkg/interfaces"
	"github.com/goliatone/go-metadoc/pkg/metadata"
)

// Resolver implements metadata.Resolver over an fs.FS rooted at the base
// path. Construction helpers live in the top-level metadoc package.
type Resolver struct {
	fs     fs.FS
	logger interfaces.Logger
}

// Ensure the implementation satisfies the public interface.
var _ metadata.Resolver = (*Resolver)(nil)

// New constructs a Resolver from pre-resolved options.
func New(options metadata.ResolverOptions) *Resolver {
	files := options.FileSystem
	if files == nil {
		base := options.BasePath
		if base == "" {
			base = "."
		}
		files = os.DirFS(base)
	}
	return &Resolver{
		fs:     files,
		logger: logging.OrNoOp(options.Logger),
	}
}

// Resolve returns the field and validation rule candidates for object.
func (r *Resolver) Resolve(ctx context.Context, object string) (metadata.Resolution, error) {
	resolution := metadata.Resolution{Object: object}

	fields, err := r.Descriptors(ctx, object, metadata.KindField)
	if err != nil {
		return metadata.Resolution{}, err
	}
	rules, err := r.Descriptors(ctx, object, metadata.KindValidationRule)
	if err != nil {
		return metadata.Resolution{}, err
	}

	resolution.Fields = fields
	resolution.Rules = rules
	return resolution, nil
}

// Descriptors lists descriptor files of kind for object, sorted by file name.
func (r *Resolver) Descriptors(ctx context.Context, object string, kind metadata.Kind) ([]metadata.Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("metadata resolver: unsupported kind %q", kind)
	}
	if err := validateObject(object); err != nil {
		return nil, err
	}

	dir := path.Join(metadata.ObjectsDir, object, kind.Directory())
	r.logger.Debug("resolving descriptors", "object", object, "kind", string(kind), "dir", dir)

	entries, err := readDir(ctx, r.fs, dir)
	if errors.Is(err, metadata.ErrDirectoryMissing) {
		r.logger.Debug("descriptor directory missing", "object", object, "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("metadata resolver: list %s: %w", dir, err)
	}

	suffix := kind.Suffix()
	var out []metadata.Descriptor
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
			continue
		}
		descriptor, err := metadata.NewDescriptor(object, kind, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, descriptor)
	}

	r.logger.Debug("resolved descriptors", "object", object, "kind", string(kind), "count", len(out))
	return out, nil
}

// Discover lists object directory names under the objects root.
func (r *Resolver) Discover(ctx context.Context) ([]string, error) {
	entries, err := readDir(ctx, r.fs, metadata.ObjectsDir)
	if errors.Is(err, metadata.ErrDirectoryMissing) {
		r.logger.Debug("objects root missing", "dir", metadata.ObjectsDir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("metadata resolver: discover objects: %w", err)
	}

	var objects []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := validateObject(entry.Name()); err != nil {
			r.logger.Warn("ignoring object directory with unsupported name", "name", entry.Name())
			continue
		}
		objects = append(objects, entry.Name())
	}
	r.logger.Debug("discovered objects", "count", len(objects))
	return objects, nil
}

// validateObject keeps lookups inside the objects root.
func validateObject(object string) error {
	if object == "" || object == "." || object == ".." ||
		strings.ContainsAny(object, `/\`) || !fs.ValidPath(object) {
		return metadata.WrapInvalidObject(object)
	}
	return nil
}
