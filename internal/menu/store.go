// Package menu implements the in-memory menu state store and the pure filter
// and summary derivations over a menu collection.
package menu

import (
	"slices"

	"github.com/mesh-intelligence/maestro/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store is the canonical in-process menu collection. Items keep insertion
// order; edits replace in place. Store is not safe for concurrent use.
type Store struct {
	items []types.MenuItem
}

// NewStore creates a store holding the given items in order.
// The input slice is copied.
func NewStore(items ...types.MenuItem) *Store {
	return &Store{items: slices.Clone(items)}
}

// AddOrUpdate replaces the item sharing item.ID at its current position, or
// appends item when the ID is new. Returns the collection afterwards.
func (s *Store) AddOrUpdate(item types.MenuItem) []types.MenuItem {
	if i := s.indexOf(item.ID); i >= 0 {
		s.items[i] = item
	} else {
		s.items = append(s.items, item)
	}
	return s.All()
}

// Remove drops the item with the given ID. A missing ID leaves the
// collection unchanged.
func (s *Store) Remove(id string) []types.MenuItem {
	if i := s.indexOf(id); i >= 0 {
		s.items = slices.Delete(s.items, i, i+1)
	}
	return s.All()
}

// All returns a copy of the collection. An empty store yields an empty,
// non-nil slice.
func (s *Store) All() []types.MenuItem {
	return append([]types.MenuItem{}, s.items...)
}

// Get returns the item with the given ID.
func (s *Store) Get(id string) (types.MenuItem, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return types.MenuItem{}, false
}

// Len returns the number of items held.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(m types.MenuItem) bool {
		return m.ID == id
	})
}
