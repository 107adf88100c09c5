package repository

import (
	"context"
	"errors"

	"docqa/internal/model"
)

var (
	// ErrNotFound is returned when no document exists for the given id.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateID is returned when inserting an id that is already present.
	// Ids are generated fresh per ingestion, so in practice this signals a bug.
	ErrDuplicateID = errors.New("duplicate document id")
)

// DocumentStore defines storage of completed document records.
// No business logic here, strictly insert-if-absent, lookup, and enumeration.
// Records are immutable once inserted; no update or delete is exposed.
type DocumentStore interface {
	// Insert stores a new record. It fails with ErrDuplicateID if the id exists.
	Insert(ctx context.Context, doc *model.Document) error

	// FindByID returns a document by its id, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns all documents in insertion order.
	List(ctx context.Context) ([]model.Document, error)
}
