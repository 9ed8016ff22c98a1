package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File stores each table as one JSON file under a data directory, named
// with the versioned key scheme "salon.v1.<table>.json".
type File struct {
	dir string
}

var _ Adapter = (*File)(nil)

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(table string) string {
	return filepath.Join(f.dir, fmt.Sprintf("salon.v1.%s.json", table))
}

func (f *File) Get(_ context.Context, table string) ([]byte, error) {
	data, err := os.ReadFile(f.path(table))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *File) PutAll(_ context.Context, table string, data []byte) error {
	return os.WriteFile(f.path(table), data, 0o644)
}
