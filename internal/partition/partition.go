package partition

import (
	"context"
	"errors"
)

// Package partition contains the client boundary for the external
// partitioning pipeline that converts raw document files into extracted
// structured text.

// ErrArtifactMissing is returned when the pipeline reported success but the
// expected output artifact does not exist. This is a hard failure: silently
// treating it as empty content would mask genuine pipeline breakage.
var ErrArtifactMissing = errors.New("partition output artifact missing")

// Partitioner converts a locally stored document into extracted content.
// The output artifact location is a documented contract: for an input file
// at inputPath, the artifact is written to the configured output directory
// under the input's base name plus a ".json" suffix.
type Partitioner interface {
	// Partition processes the file at inputPath and returns the extracted
	// content read from the output artifact. Content may be empty if the
	// pipeline produced no output for the document.
	Partition(ctx context.Context, inputPath string) (string, error)
}
