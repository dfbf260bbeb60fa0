// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Basketry API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cat, cfg)

# Endpoints

Health:

	GET /health

Lists:

	GET    /lists      - All lists, newest first
	POST   /lists      - Create list
	GET    /lists/{id} - List with items
	PUT    /lists/{id} - Rename list
	DELETE /lists/{id} - Delete list and its items

Items:

	POST   /lists/{id}/items  - Add item
	PATCH  /items/{id}        - Update item fields
	POST   /items/{id}/toggle - Set purchased flag
	DELETE /items/{id}        - Remove item

Registries:

	GET /categories
	GET /units
	GET /products
	GET /catalog/suggest?q=&locale=

Sharing:

	GET  /lists/{id}/share     - Transport string and share link
	GET  /lists/{id}/share.png - Share link as a QR code
	POST /share/preview        - Decode without importing
	POST /share/import         - Decode and import (mode new or merge)

# Handler Initialization

The router builds one store.Store over the connection and one share.Codec
whose compression follows cfg.Compression; handlers share both.
*/
package router
