// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog provides the built-in product catalog.

The catalog is embedded as YAML (catalog.yaml) and holds the default
categories, units and products, English and Russian product names with
aliases, and per-locale keywords used to guess a category for free-form
names.

	cat, err := catalog.Load()
	p := cat.FindByName("whole milk", catalog.LocaleEN) // prod-milk

Seeding a store:

	err := st.SeedDefaults(ctx, cat.Defaults())
*/
package catalog
