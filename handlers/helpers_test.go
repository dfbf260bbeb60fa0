// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"testing"

	"github.com/danielhkuo/basketry/catalog"
	"github.com/danielhkuo/basketry/cliparse"
	"github.com/danielhkuo/basketry/models"
	"github.com/danielhkuo/basketry/store"
	"github.com/danielhkuo/basketry/testutil"
)

// setupTest returns a store seeded with the built-in catalog.
func setupTest(t *testing.T) (*store.Store, *catalog.Catalog, cliparse.Config) {
	t.Helper()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	st := store.New(testutil.SetupTestDB(t))
	if err := st.SeedDefaults(context.Background(), cat.Defaults()); err != nil {
		t.Fatalf("Failed to seed defaults: %v", err)
	}
	return st, cat, testutil.GetTestConfig()
}

// createTestList creates a list holding the given catalog products.
func createTestList(t *testing.T, st *store.Store, name string, productIDs ...string) *models.ShoppingList {
	t.Helper()
	ctx := context.Background()

	list, err := st.CreateList(ctx, name)
	if err != nil {
		t.Fatalf("Failed to create list: %v", err)
	}

	products, err := st.GetProducts(ctx)
	if err != nil {
		t.Fatalf("Failed to get products: %v", err)
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, id := range productIDs {
		p, ok := byID[id]
		if !ok {
			t.Fatalf("Unknown product %s", id)
		}
		_, err := st.CreateItem(ctx, list.ID, models.ItemFields{
			ProductID:  p.ID,
			Name:       p.Name,
			Quantity:   1,
			UnitID:     p.UnitID,
			CategoryID: p.CategoryID,
		})
		if err != nil {
			t.Fatalf("Failed to create item: %v", err)
		}
	}
	return list
}
