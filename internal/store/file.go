package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists each table as <dir>/<table>.json. This is the
// default backend and mirrors the one-document-per-table layout the
// store contract is built around.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

func (f *FileBackend) ReadTable(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if os.IsNotExist(err) {
		return nil, ErrTableMissing
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *FileBackend) WriteTable(_ context.Context, name string, data []byte) error {
	// write-then-rename so readers never observe a half-written table
	tmp := f.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(name))
}
