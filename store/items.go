// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/basketry/models"
)

const itemColumns = `id, list_id, product_id, name, quantity, unit_id, category_id,
		       comment, scope, purchased, created_at, updated_at`

// GetItemsByList returns a list's items in the order they were added.
func (s *Store) GetItemsByList(ctx context.Context, listID string) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM item
		WHERE list_id = $1
		ORDER BY position
	`, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func (s *Store) GetItem(ctx context.Context, id string) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM item
		WHERE id = $1
	`, id)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return item, err
}

// CreateItem appends an item to the end of a list.
func (s *Store) CreateItem(ctx context.Context, listID string, fields models.ItemFields) (*models.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var last int
	err = tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM item WHERE list_id = $1", listID).Scan(&last)
	if err != nil {
		return nil, fmt.Errorf("failed to query item position: %w", err)
	}

	now := s.timestamp()
	id := newID()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO item (id, list_id, position, product_id, name, quantity, unit_id, category_id,
		                  comment, scope, purchased, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, id, listID, last+1, fields.ProductID, fields.Name, fields.Quantity, fields.UnitID, fields.CategoryID,
		fields.Comment, fields.Scope, fields.Purchased, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	created, _ := parseTime(now)
	return &models.Item{
		ID:         id,
		ListID:     listID,
		ProductID:  fields.ProductID,
		Name:       fields.Name,
		Quantity:   fields.Quantity,
		UnitID:     fields.UnitID,
		CategoryID: fields.CategoryID,
		Comment:    fields.Comment,
		Scope:      fields.Scope,
		Purchased:  fields.Purchased,
		CreatedAt:  created,
		UpdatedAt:  created,
	}, nil
}

// UpdateItem applies the non-nil fields of patch.
func (s *Store) UpdateItem(ctx context.Context, id string, patch models.ItemPatch) (*models.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.UnitID != nil {
		item.UnitID = *patch.UnitID
	}
	if patch.CategoryID != nil {
		item.CategoryID = *patch.CategoryID
	}
	if patch.Comment != nil {
		item.Comment = *patch.Comment
	}
	if patch.Scope != nil {
		item.Scope = *patch.Scope
	}
	if patch.Purchased != nil {
		item.Purchased = *patch.Purchased
	}

	now := s.timestamp()
	_, err = s.db.ExecContext(ctx, `
		UPDATE item
		SET name = $1, quantity = $2, unit_id = $3, category_id = $4,
		    comment = $5, scope = $6, purchased = $7, updated_at = $8
		WHERE id = $9
	`, item.Name, item.Quantity, item.UnitID, item.CategoryID,
		item.Comment, item.Scope, item.Purchased, now, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	item.UpdatedAt, _ = parseTime(now)
	return item, nil
}

func (s *Store) ToggleItem(ctx context.Context, id string, purchased bool) (*models.Item, error) {
	return s.UpdateItem(ctx, id, models.ItemPatch{Purchased: &purchased})
}

func (s *Store) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM item WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return nil
}

func scanItem(row scanner) (*models.Item, error) {
	var item models.Item
	var createdAt, updatedAt string
	err := row.Scan(
		&item.ID, &item.ListID, &item.ProductID, &item.Name, &item.Quantity,
		&item.UnitID, &item.CategoryID, &item.Comment, &item.Scope, &item.Purchased,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan item: %w", err)
	}

	if item.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if item.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &item, nil
}
