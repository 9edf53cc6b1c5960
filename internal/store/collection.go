package store

import (
	"sync"

	"github.com/dvxstudio/backend/pkg/collection"
)

// Collection manages one ordered entity sequence persisted as a document of
// shape {"<name>": [entities...]}. Every operation runs under the
// collection's own mutex, so concurrent appends can never observe the same
// max id and overwrite each other — the whole load-modify-save sequence is
// linearized per collection.
type Collection[T any] struct {
	docs     *DocumentStore
	name     string
	id       func(T) int
	finalize func(item T, id int) T

	mu sync.Mutex
}

// NewCollection wires a collection over docs. id extracts an entity's id;
// finalize assigns the freshly allocated id plus any store-controlled
// derived fields (creation date, initial status) onto an appended entity.
func NewCollection[T any](docs *DocumentStore, name string, id func(T) int, finalize func(item T, id int) T) *Collection[T] {
	return &Collection[T]{
		docs:     docs,
		name:     name,
		id:       id,
		finalize: finalize,
	}
}

// Name returns the collection name, which doubles as the document name.
func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) load() ([]T, error) {
	var doc map[string][]T
	if err := c.docs.Load(c.name, &doc); err != nil {
		return nil, err
	}
	return doc[c.name], nil
}

func (c *Collection[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.docs.Save(c.name, map[string][]T{c.name: items})
}

// List returns all entities in stored order, or only those satisfying pred
// when pred is non-nil. Never returns a nil slice.
func (c *Collection[T]) List(pred func(T) bool) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return nil, err
	}
	if pred != nil {
		items = collection.Filter(items, pred)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Append allocates the next id (max existing + 1, or 1 for an empty
// collection), finalizes the entity, persists the whole document and
// returns the finalized entity. The id is recomputed from the live
// collection on every insert; there is no separate sequence counter.
func (c *Collection[T]) Append(item T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	items, err := c.load()
	if err != nil {
		return zero, err
	}

	nextID := 1
	for _, it := range items {
		if id := c.id(it); id >= nextID {
			nextID = id + 1
		}
	}

	final := c.finalize(item, nextID)
	if err := c.save(append(items, final)); err != nil {
		return zero, err
	}
	return final, nil
}

// RemoveByID drops every entity whose id matches (at most one in practice)
// and persists only when something was actually removed. The boolean
// reports whether a removal happened.
func (c *Collection[T]) RemoveByID(id int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return false, err
	}

	kept := collection.Reject(items, func(it T) bool { return c.id(it) == id })
	if len(kept) == len(items) {
		return false, nil
	}
	if err := c.save(kept); err != nil {
		return false, err
	}
	return true, nil
}

// Len reports the current number of entities.
func (c *Collection[T]) Len() (int, error) {
	items, err := c.List(nil)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
