package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore writes artifacts under a local directory. Names may contain
// slashes; intermediate directories are created.
type FileStore struct {
	Dir string
}

// Put writes data to Dir/name, replacing any existing file.
func (s *FileStore) Put(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Location describes where name ends up.
func (s *FileStore) Location(name string) string {
	return filepath.Join(s.Dir, filepath.FromSlash(name))
}
