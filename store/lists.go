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

// GetLists returns all lists, oldest first.
func (s *Store) GetLists(ctx context.Context) ([]models.ShoppingList, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM shopping_list
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lists: %w", err)
	}
	defer rows.Close()

	lists := []models.ShoppingList{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, err
		}
		lists = append(lists, *list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lists: %w", err)
	}
	return lists, nil
}

// GetList returns the list with the given id, or ErrNotFound.
func (s *Store) GetList(ctx context.Context, id string) (*models.ShoppingList, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM shopping_list
		WHERE id = $1
	`, id)

	list, err := scanList(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("list %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) CreateList(ctx context.Context, name string) (*models.ShoppingList, error) {
	now := s.timestamp()
	id := newID()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shopping_list (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, id, name, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert list: %w", err)
	}

	created, _ := parseTime(now)
	return &models.ShoppingList{ID: id, Name: name, CreatedAt: created, UpdatedAt: created}, nil
}

// RenameList changes a list's name, returning ErrNotFound if it is missing.
func (s *Store) RenameList(ctx context.Context, id, name string) (*models.ShoppingList, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE shopping_list
		SET name = $1, updated_at = $2
		WHERE id = $3
	`, name, s.timestamp(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to rename list: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("list %s: %w", id, ErrNotFound)
	}
	return s.GetList(ctx, id)
}

// DeleteList removes a list and its items in one transaction. Deleting a
// missing list is not an error.
func (s *Store) DeleteList(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM item WHERE list_id = $1", id); err != nil {
		return fmt.Errorf("failed to delete items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM shopping_list WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanList(row scanner) (*models.ShoppingList, error) {
	var list models.ShoppingList
	var createdAt, updatedAt string
	if err := row.Scan(&list.ID, &list.Name, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan list: %w", err)
	}

	var err error
	if list.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if list.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &list, nil
}
