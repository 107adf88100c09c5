package memory

import (
	"context"
	"sync"

	"docqa/internal/model"
	"docqa/internal/repository"
)

// DocumentMemory is an in-memory implementation of repository.DocumentStore.
// State is process-local and lost on restart, which is the intended lifecycle.
// It is safe for concurrent use: inserts use freshly generated ids and are
// therefore disjoint, so a single RWMutex over the map is sufficient.
type DocumentMemory struct {
	mu    sync.RWMutex
	docs  map[string]model.Document
	order []string
}

// NewDocumentMemory creates an empty in-memory document store.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{
		docs: make(map[string]model.Document),
	}
}

var _ repository.DocumentStore = (*DocumentMemory)(nil)

// Insert stores a new record, preserving insertion order for List.
func (s *DocumentMemory) Insert(_ context.Context, doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[doc.ID]; ok {
		return repository.ErrDuplicateID
	}
	s.docs[doc.ID] = *doc
	s.order = append(s.order, doc.ID)
	return nil
}

// FindByID returns a copy of the record so callers cannot mutate stored state.
func (s *DocumentMemory) FindByID(_ context.Context, id string) (*model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &doc, nil
}

// List returns copies of all records in insertion order.
func (s *DocumentMemory) List(_ context.Context) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Document, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.docs[id])
	}
	return items, nil
}
