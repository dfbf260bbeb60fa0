// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: SQLite path or PostgreSQL connection string
    (default for sqlite: basketry.db)
  - ShareBaseURL: Prefix for share links (default: https://basketry.app)
  - Compression: Raw DEFLATE for share payloads (default: true)
  - DefaultLocale: Catalog locale when a request names none (default: en)

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  sqlite or postgres
	--base-url           Share link base URL
	--compression        Enable raw DEFLATE (--compression=false to disable)
	--locale             en or ru

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	SHARE_BASE_URL    → --base-url
	SHARE_COMPRESSION → --compression
	DEFAULT_LOCALE    → --locale

CLI flags take precedence over environment variables. main loads a .env
file, if present, before parsing.

# Validation

ParseFlags returns an error when:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing for postgres
  - PORT or SHARE_COMPRESSION cannot be parsed
*/
package cliparse
