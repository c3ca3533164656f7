package session

import "github.com/mesh-intelligence/maestro/pkg/types"

// Command is an instruction to the session. The concrete types below are
// the only implementations.
type Command interface {
	kind() string
}

// AddItem adds a new item. An empty ID is replaced by a generated one; an ID
// already on the menu is rejected with ErrDuplicateID.
type AddItem struct {
	Item types.MenuItem
}

// EditItem replaces an existing item. The ID must already be on the menu.
type EditItem struct {
	Item types.MenuItem
}

// SaveItem adds or replaces depending on whether Item.ID is on the menu.
type SaveItem struct {
	Item types.MenuItem
}

// RemoveItem removes the item with ID. An unknown ID is a silent no-op.
type RemoveItem struct {
	ID string
}

// ApplyFilter replaces the active course selection. No courses clears it.
type ApplyFilter struct {
	Courses []types.Course
}

// Command kinds, used for logging and metrics labels.
const (
	KindAdd    = "add"
	KindEdit   = "edit"
	KindSave   = "save"
	KindRemove = "remove"
	KindFilter = "filter"
)

func (AddItem) kind() string     { return KindAdd }
func (EditItem) kind() string    { return KindEdit }
func (SaveItem) kind() string    { return KindSave }
func (RemoveItem) kind() string  { return KindRemove }
func (ApplyFilter) kind() string { return KindFilter }
