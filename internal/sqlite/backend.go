// Package sqlite implements types.Store on top of a process-private
// in-memory SQLite database. Nothing is written to disk; the menu lives as
// long as the backend stays attached.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/maestro/pkg/types"
)

// memoryDSN opens a fresh database private to its connection.
const memoryDSN = ":memory:"

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("sqlite backend is detached")
	ErrAlreadyAttached = errors.New("sqlite backend is already attached")
)

// Compile-time interface check: Backend must implement types.Store.
var _ types.Store = (*Backend)(nil)

// Backend serves the menu collection from SQLite. The Store methods never
// fail; a driver error is logged, remembered for Err, and the last
// collection read successfully is returned instead.
type Backend struct {
	attached bool
	db       *sql.DB
	log      logrus.FieldLogger
	last     []types.MenuItem
	err      error
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(log logrus.FieldLogger) *Backend {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Backend{log: log.WithField("backend", types.BackendSQLite)}
}

// Attach opens the in-memory database and creates the schema.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	if b.attached {
		return ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: gets its own database; pin the pool to
	// one connection that never expires.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("create schema: %w", err)
		}
	}

	b.db = db
	b.attached = true
	b.last = nil
	b.err = nil
	b.log.Debug("attached")
	return nil
}

// Detach closes the database, discarding the menu. Detach is idempotent.
func (b *Backend) Detach() error {
	if !b.attached {
		return nil
	}
	b.attached = false
	b.last = nil
	db := b.db
	b.db = nil
	if err := db.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}
	b.log.Debug("detached")
	return nil
}

// Err returns the error of the most recent Store call, or nil when that
// call succeeded.
func (b *Backend) Err() error {
	return b.err
}

// AddOrUpdate updates the row for item.ID in place or inserts it after the
// last position.
func (b *Backend) AddOrUpdate(item types.MenuItem) []types.MenuItem {
	if err := b.addOrUpdate(item); err != nil {
		b.fail("add or update", err, logrus.Fields{"item_id": item.ID})
		return b.lastGood()
	}
	return b.All()
}

// Remove deletes the row for id. A missing id is a no-op.
func (b *Backend) Remove(id string) []types.MenuItem {
	if err := b.remove(id); err != nil {
		b.fail("remove", err, logrus.Fields{"item_id": id})
		return b.lastGood()
	}
	return b.All()
}

// All returns every item ordered by position.
func (b *Backend) All() []types.MenuItem {
	items, err := b.fetchAll()
	if err != nil {
		b.fail("fetch", err, nil)
		return b.lastGood()
	}
	b.last = items
	b.err = nil
	return cloneItems(items)
}

// Get returns the item with the given id.
func (b *Backend) Get(id string) (types.MenuItem, bool) {
	item, err := b.get(id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			b.fail("get", err, logrus.Fields{"item_id": id})
			return types.MenuItem{}, false
		}
		b.err = nil
		return types.MenuItem{}, false
	}
	b.err = nil
	return item, true
}

func (b *Backend) fail(op string, err error, fields logrus.Fields) {
	b.err = fmt.Errorf("%s: %w", op, err)
	b.log.WithFields(fields).WithError(err).Error(op + " failed")
}

func (b *Backend) lastGood() []types.MenuItem {
	return cloneItems(b.last)
}

func cloneItems(items []types.MenuItem) []types.MenuItem {
	out := make([]types.MenuItem, len(items))
	copy(out, items)
	return out
}
