// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Basketry API server.

Basketry keeps shopping lists and moves them between devices as compact,
URL-safe share payloads that fit in a link or a QR code.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run main.go

Or with flags:

	go run main.go -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - SHARE_BASE_URL (--base-url): Origin used in share links
  - SHARE_COMPRESSION (--compression): Emit compressed payloads (default: true)
  - DEFAULT_LOCALE (--locale): Catalog locale when the request has none

# Architecture

  - share: payload model, compact form, DEFLATE codec, import/export
  - store: database/sql repository for lists, items and registries
  - catalog: built-in product catalog and seed data
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
