// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Opening

Open accepts "sqlite" (modernc.org/sqlite, no cgo) or "postgres"
(github.com/lib/pq):

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite connections run with foreign keys on and a 5 second busy timeout.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - shopping_list: named lists
  - category, unit, product: name registries
  - item: list lines, ordered by position within a list

# Relationships

	shopping_list 1──* item
	product *──1 category
	product *──1 unit
	item *──1 product, unit, category

Deleting a list removes its items.

# Indexes

  - item.list_id (items by list)
  - product.name
*/
package db
