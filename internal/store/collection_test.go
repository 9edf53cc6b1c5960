package store_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvxstudio/backend/internal/store"
)

type note struct {
	ID  int    `json:"id"`
	Tag string `json:"tag"`
}

func newNotes(t *testing.T) *store.Collection[note] {
	t.Helper()

	docs := store.NewDocumentStore(store.NewMemoryBackend())
	require.NoError(t, docs.RegisterDefault("notes", map[string][]note{"notes": {}}))
	require.NoError(t, docs.Init())

	return store.NewCollection(docs, "notes",
		func(n note) int { return n.ID },
		func(n note, id int) note { n.ID = id; return n },
	)
}

func TestAppendEmptyCollectionStartsAtOne(t *testing.T) {
	notes := newNotes(t)

	got, err := notes.Append(note{Tag: "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}

func TestAppendAllocatesSequentialIDs(t *testing.T) {
	notes := newNotes(t)

	for i := 1; i <= 5; i++ {
		got, err := notes.Append(note{Tag: fmt.Sprintf("n%d", i)})
		require.NoError(t, err)
		assert.Equal(t, i, got.ID)
	}

	items, err := notes.List(nil)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for i, it := range items {
		assert.Equal(t, i+1, it.ID)
	}
}

func TestAppendRecomputesIDFromLiveCollection(t *testing.T) {
	notes := newNotes(t)

	for i := 0; i < 3; i++ {
		_, err := notes.Append(note{Tag: "x"})
		require.NoError(t, err)
	}

	// Removing the max id frees it up: the next insert recomputes max+1
	// from what is actually stored, not from a counter.
	removed, err := notes.RemoveByID(3)
	require.NoError(t, err)
	require.True(t, removed)

	got, err := notes.Append(note{Tag: "y"})
	require.NoError(t, err)
	assert.Equal(t, 3, got.ID)
}

func TestRemoveByIDMissingLeavesCollectionUnchanged(t *testing.T) {
	notes := newNotes(t)

	_, err := notes.Append(note{Tag: "keep"})
	require.NoError(t, err)

	removed, err := notes.RemoveByID(99)
	require.NoError(t, err)
	assert.False(t, removed)

	items, err := notes.List(nil)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestListFilterPreservesOrder(t *testing.T) {
	notes := newNotes(t)

	for _, tag := range []string{"a", "b", "a", "c", "a"} {
		_, err := notes.Append(note{Tag: tag})
		require.NoError(t, err)
	}

	got, err := notes.List(func(n note) bool { return n.Tag == "a" })
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{got[0].ID, got[1].ID, got[2].ID})

	none, err := notes.List(func(n note) bool { return n.Tag == "zzz" })
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestConcurrentAppendsNeverDuplicateIDs(t *testing.T) {
	notes := newNotes(t)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := notes.Append(note{Tag: "c"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	items, err := notes.List(nil)
	require.NoError(t, err)
	require.Len(t, items, workers)

	seen := make(map[int]bool, workers)
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}
