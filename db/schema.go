// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are fixed-width UTC RFC 3339 text so both dialects store and
// order them the same way.
const schema = `
-- Lists
CREATE TABLE IF NOT EXISTS shopping_list (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

-- Registries
CREATE TABLE IF NOT EXISTS category (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS unit (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    short TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS product (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category_id TEXT NOT NULL REFERENCES category(id),
    unit_id TEXT NOT NULL REFERENCES unit(id)
);

CREATE INDEX IF NOT EXISTS idx_product_name ON product(name);

-- Items
CREATE TABLE IF NOT EXISTS item (
    id TEXT PRIMARY KEY,
    list_id TEXT NOT NULL REFERENCES shopping_list(id) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    product_id TEXT NOT NULL REFERENCES product(id),
    name TEXT NOT NULL,
    quantity DOUBLE PRECISION NOT NULL,
    unit_id TEXT NOT NULL REFERENCES unit(id),
    category_id TEXT NOT NULL REFERENCES category(id),
    comment TEXT NOT NULL DEFAULT '',
    scope TEXT NOT NULL DEFAULT '',
    purchased BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_item_list_id ON item(list_id);
`
