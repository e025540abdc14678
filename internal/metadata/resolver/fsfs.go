package resolver

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-metadoc/pkg/metadata"
)

// readDir lists dir, mapping absent paths and plain files onto
// metadata.ErrDirectoryMissing. Entries come back sorted by name.
func readDir(ctx context.Context, filesystem fs.FS, dir string) ([]fs.DirEntry, error) {
	if filesystem == nil {
		return nil, errors.New("metadata resolver: filesystem is not configured")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	info, err := fs.Stat(filesystem, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, metadata.ErrDirectoryMissing
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, metadata.ErrDirectoryMissing
	}

	return fs.ReadDir(filesystem, dir)
}
