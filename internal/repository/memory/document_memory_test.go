package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa/internal/model"
	"docqa/internal/repository"
)

func TestDocumentMemory_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentMemory()

	doc := &model.Document{ID: "id-1", FileName: "a.pdf", Content: "hello"}
	require.NoError(t, store.Insert(ctx, doc))

	got, err := store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", got.FileName)
	assert.Equal(t, "hello", got.Content)

	// Returned record is a copy; mutating it must not affect the store.
	got.Content = "mutated"
	again, err := store.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "hello", again.Content)
}

func TestDocumentMemory_FindMissing(t *testing.T) {
	store := NewDocumentMemory()

	_, err := store.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDocumentMemory_InsertDuplicate(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentMemory()

	require.NoError(t, store.Insert(ctx, &model.Document{ID: "dup"}))
	err := store.Insert(ctx, &model.Document{ID: "dup"})
	assert.ErrorIs(t, err, repository.ErrDuplicateID)
}

func TestDocumentMemory_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentMemory()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Insert(ctx, &model.Document{
			ID:       fmt.Sprintf("id-%d", i),
			FileName: fmt.Sprintf("file-%d.txt", i),
		}))
	}

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for i, d := range items {
		assert.Equal(t, fmt.Sprintf("id-%d", i), d.ID)
	}

	// Repeated listing with no intervening inserts returns the same set.
	itemsAgain, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, itemsAgain)
}

func TestDocumentMemory_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewDocumentMemory()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(2 * n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_ = store.Insert(ctx, &model.Document{ID: fmt.Sprintf("w-%d", i)})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, n)
}
