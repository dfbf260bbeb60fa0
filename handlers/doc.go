// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Basketry API.

# Handler Types

Each handler is a struct holding its dependencies and the config:

  - ListHandler: list CRUD
  - ItemHandler: item CRUD, catalog lookup on create
  - CatalogHandler: registries and name suggestions
  - ShareHandler: export, preview and import of share payloads

	listHandler := handlers.NewListHandler(st, cfg)

# Item Creation

An item name is matched against the built-in catalog in the request
locale. Unit and category left empty in the request are taken from the
matching product, else from category keywords, else the defaults
"pcs" and "Other".

# Sharing

GET /lists/{id}/share returns the transport string and a link of the form

	<base-url>/share#<transport>

Preview and import accept either form. A payload that fails to decode is
rejected with 422. Import creates items one at a time; if a write fails
the items already created stay and the response is 500 with the count.

Locale selection uses ?locale=, then Accept-Language, then the configured
default.
*/
package handlers
