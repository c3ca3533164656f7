package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/maestro/pkg/types"
)

// addOrUpdate determines INSERT vs UPDATE from the current rows and applies
// it in one transaction.
func (b *Backend) addOrUpdate(item types.MenuItem) error {
	if !b.attached {
		return ErrDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow("SELECT 1 FROM menu_items WHERE item_id = ?", item.ID).Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking item existence: %w", err)
	}

	if exists {
		_, err = tx.Exec(
			"UPDATE menu_items SET dish_name = ?, description = ?, price = ?, course = ? WHERE item_id = ?",
			item.DishName, item.Description, item.Price, string(item.Course), item.ID,
		)
	} else {
		_, err = tx.Exec(
			`INSERT INTO menu_items (item_id, position, dish_name, description, price, course)
			 VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM menu_items), ?, ?, ?, ?)`,
			item.ID, item.DishName, item.Description, item.Price, string(item.Course),
		)
	}
	if err != nil {
		return fmt.Errorf("persisting item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item: %w", err)
	}
	return nil
}

func (b *Backend) remove(id string) error {
	if !b.attached {
		return ErrDetached
	}
	if _, err := b.db.Exec("DELETE FROM menu_items WHERE item_id = ?", id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

func (b *Backend) get(id string) (types.MenuItem, error) {
	if !b.attached {
		return types.MenuItem{}, ErrDetached
	}
	row := b.db.QueryRow(
		"SELECT item_id, dish_name, description, price, course FROM menu_items WHERE item_id = ?",
		id,
	)
	return hydrateItem(row)
}

func (b *Backend) fetchAll() ([]types.MenuItem, error) {
	if !b.attached {
		return nil, ErrDetached
	}
	rows, err := b.db.Query(
		"SELECT item_id, dish_name, description, price, course FROM menu_items ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []types.MenuItem{}
	for rows.Next() {
		item, err := hydrateItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateItem converts a row into a MenuItem.
func hydrateItem(s scanner) (types.MenuItem, error) {
	var (
		item   types.MenuItem
		course string
	)
	if err := s.Scan(&item.ID, &item.DishName, &item.Description, &item.Price, &course); err != nil {
		return types.MenuItem{}, err
	}
	item.Course = types.Course(course)
	return item, nil
}
