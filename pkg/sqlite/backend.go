// Package sqlite provides the public API for the SQLite menu store.
// This package exposes the factory function for creating SQLite-backed
// stores while keeping implementation details internal.
//
// The database lives in memory and is discarded when the store is closed.
package sqlite

import (
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/maestro/internal/sqlite"
	"github.com/mesh-intelligence/maestro/pkg/types"
)

// Store is a menu store backed by SQLite.
type Store interface {
	types.Store

	// Err returns the last storage error, or nil. Store operations never
	// fail outright; on error they return the last good collection.
	Err() error

	// Close releases the database. Calling Close more than once is safe.
	Close() error
}

type store struct {
	*sqlite.Backend
}

func (s store) Close() error { return s.Detach() }

// Open creates and attaches a SQLite store. A nil log discards log output.
//
// Example:
//
//	s, err := sqlite.Open(log)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
func Open(log logrus.FieldLogger) (Store, error) {
	b := sqlite.NewBackend(log)
	if err := b.Attach(types.Config{Backend: types.BackendSQLite}); err != nil {
		return nil, err
	}
	return store{Backend: b}, nil
}
