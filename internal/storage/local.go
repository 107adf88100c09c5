package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// localStorage implements Storage on the local filesystem.
// It is safe for concurrent use as long as callers use distinct keys,
// which the id-namespaced key scheme guarantees.
type localStorage struct {
	dir string
}

// NewLocal creates a filesystem-backed Storage rooted at dir,
// creating the directory if it does not exist.
func NewLocal(dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &localStorage{dir: dir}, nil
}

// Put streams the content to {dir}/{key}.
func (s *localStorage) Put(ctx context.Context, key string, r io.Reader) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}

	path := filepath.Join(s.dir, key)
	f, err := os.Create(path)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}

	return ObjectInfo{Key: key, Path: path, Size: n}, nil
}
