package types

import "errors"

// Store holds the canonical ordered collection of menu items.
// Every mutation returns the collection as it stands afterwards.
type Store interface {
	// AddOrUpdate replaces the item with the same ID in place, or appends
	// the item when its ID is not present.
	AddOrUpdate(item MenuItem) []MenuItem

	// Remove drops the item with the given ID. A missing ID is a no-op.
	Remove(id string) []MenuItem

	// All returns the current collection. The slice is a copy.
	All() []MenuItem

	// Get returns the item with the given ID and whether it was found.
	Get(id string) (MenuItem, bool)
}

// Entity field errors.
var (
	ErrInvalidID          = errors.New("invalid item ID")
	ErrInvalidName        = errors.New("dish name must not be empty")
	ErrInvalidDescription = errors.New("description must not be empty")
	ErrInvalidPrice       = errors.New("price must be a finite non-negative number")
	ErrInvalidCourse      = errors.New("invalid course")
)
