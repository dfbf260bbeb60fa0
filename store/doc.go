// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists shopping lists, their items, and the category,
unit and product registries.

	st := store.New(conn)
	list, err := st.CreateList(ctx, "Weekly basket")

Store satisfies share.Store, so a share.Assembler can build payloads from
it and import payloads into it.

# Registries

Categories, units and products are looked up by name, trimmed and
case-folded. The Ensure methods find or create:

	unit, err := st.EnsureUnit(ctx, "kg")

A unit matches on either its name or its short name.

# Items

Items keep the order they were added in. Deleting a list deletes its items
in the same transaction.

Missing lists and items are reported with ErrNotFound:

	if errors.Is(err, store.ErrNotFound) { ... }
*/
package store
