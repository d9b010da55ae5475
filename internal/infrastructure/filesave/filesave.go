// Package filesave stores exported images on disk.
package filesave

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Saver writes files into a fixed directory.
type Saver struct {
	dir string
}

// NewSaver creates a saver rooted at dir. An empty dir means the working directory.
func NewSaver(dir string) *Saver {
	if dir == "" {
		dir = "."
	}
	return &Saver{dir: dir}
}

// Dir returns the target directory.
func (s *Saver) Dir() string {
	return s.dir
}

// Save writes data to name inside the directory and returns the full path.
// An existing file with the same name is overwritten.
func (s *Saver) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid file name %q", name)
	}

	if err := os.MkdirAll(s.dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
