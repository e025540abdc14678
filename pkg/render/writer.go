package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	if dir == "" {
		return errors.New("render: output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("render: ensure output dir: %w", err)
	}
	return nil
}

// WriteFile creates dir when needed and writes data to dir/name, replacing
// any existing file. The handle is closed before returning and a close error
// is reported.
func WriteFile(dir, name string, data []byte) (path string, err error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("render: invalid output file name %q", name)
	}
	if err := EnsureDir(dir); err != nil {
		return "", err
	}

	path = filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("render: open %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			path, err = "", fmt.Errorf("render: close %s: %w", path, closeErr)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return "", fmt.Errorf("render: write %s: %w", path, err)
	}
	return path, nil
}
