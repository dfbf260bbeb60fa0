// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/basketry/models"
)

// DefaultListName is the list created in an empty store.
const DefaultListName = "Weekly basket"

// Defaults is the built-in registry content inserted by SeedDefaults.
type Defaults struct {
	Categories []models.Category
	Units      []models.Unit
	Products   []models.Product
}

// SeedDefaults inserts any default category, unit or product whose id is
// missing, leaving existing rows untouched, then creates DefaultListName
// if the store has no lists. Safe to call on every start.
func (s *Store) SeedDefaults(ctx context.Context, defaults Defaults) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range defaults.Categories {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO category (id, name) VALUES ($1, $2)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.Name)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}
	for _, u := range defaults.Units {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO unit (id, name, short) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, u.ID, u.Name, u.Short)
		if err != nil {
			return fmt.Errorf("failed to seed unit %s: %w", u.ID, err)
		}
	}
	for _, p := range defaults.Products {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product (id, name, category_id, unit_id) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, p.ID, p.Name, p.CategoryID, p.UnitID)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}

	var lists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM shopping_list").Scan(&lists); err != nil {
		return fmt.Errorf("failed to count lists: %w", err)
	}
	if lists == 0 {
		now := s.timestamp()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO shopping_list (id, name, created_at, updated_at)
			VALUES ($1, $2, $3, $4)
		`, newID(), DefaultListName, now, now)
		if err != nil {
			return fmt.Errorf("failed to create default list: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	slog.Info("defaults seeded",
		"categories", len(defaults.Categories),
		"units", len(defaults.Units),
		"products", len(defaults.Products),
	)
	return nil
}
