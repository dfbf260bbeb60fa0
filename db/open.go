// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open connects to the database and verifies the connection.
//
// SQLite is limited to a single connection: writes are serialized, and an
// in-memory database lives only as long as its one connection.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case TypeSQLite:
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		conn.SetMaxOpenConns(1)
		if _, err := conn.Exec(sqlitePragmas); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to apply sqlite pragmas: %w", err)
		}
		return conn, nil

	case TypePostgres:
		conn, err := sql.Open("postgres", url)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("database ping failed: %w", err)
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

const sqlitePragmas = `
PRAGMA foreign_keys = ON;
PRAGMA busy_timeout = 5000;
`
