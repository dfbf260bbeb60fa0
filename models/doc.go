// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateListRequest, RenameListRequest: name
  - CreateItemRequest: name, quantity, unit, category, comment, scope
  - UpdateItemRequest: optional name, quantity, comment, scope, purchased
  - ToggleItemRequest: purchased
  - PreviewShareRequest: data (a transport string)
  - ImportShareRequest: data, mode, target_list_id

# Response Types

Types for JSON responses:

  - ShareResponse: data, format, compressed, size, share_url
  - ImportShareResponse: list_id, imported
  - SuggestResponse: products
  - ErrorResponse: error, message

# Domain Types

Entities held by the list store:

  - ShoppingList: a named list
  - Category, Unit, Product: name registries
  - Item: one line of a list, linked to a product, unit and category
  - ItemFields, ItemPatch: inputs for creating and updating items

Share payload types live in package share.
*/
package models
