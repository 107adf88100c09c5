package storage

import (
	"context"
	"io"
)

// Package storage contains the file persistence abstraction for raw uploads.
// The partitioning collaborator consumes local paths, so implementations
// must place content on the local filesystem and report where it landed.

// ObjectInfo contains basic information about a persisted object.
type ObjectInfo struct {
	Key  string
	Path string
	Size int64
}

// Storage persists raw upload bytes under a caller-chosen key.
// Keys are namespaced by the generated document id, so concurrent
// uploads with identical file names never collide.
type Storage interface {
	// Put writes the reader's content under the given key and returns
	// where it was stored. The file is left in place even if later
	// ingestion steps fail; cleanup is out of scope.
	Put(ctx context.Context, key string, r io.Reader) (ObjectInfo, error)
}
