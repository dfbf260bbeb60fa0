// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/basketry/catalog"
	"github.com/danielhkuo/basketry/models"
	"github.com/danielhkuo/basketry/share"
	"github.com/danielhkuo/basketry/store"
	"github.com/danielhkuo/basketry/testutil"
)

func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	if err := store.New(db).SeedDefaults(context.Background(), cat.Defaults()); err != nil {
		t.Fatalf("Failed to seed defaults: %v", err)
	}
	return NewRouter(db, cat, testutil.GetTestConfig())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "basketry API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	// 400 and 404 are valid handler responses; 405 means no route
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"GET", "/lists"},
		{"POST", "/lists"},
		{"GET", "/lists/test-id"},
		{"PUT", "/lists/test-id"},
		{"DELETE", "/lists/test-id"},

		{"POST", "/lists/test-id/items"},
		{"PATCH", "/items/test-id"},
		{"DELETE", "/items/test-id"},
		{"POST", "/items/test-id/toggle"},

		{"GET", "/categories"},
		{"GET", "/units"},
		{"GET", "/products"},
		{"GET", "/catalog/suggest"},

		{"GET", "/lists/test-id/share"},
		{"GET", "/lists/test-id/share.png"},
		{"POST", "/share/preview"},
		{"POST", "/share/import"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/items/test-id"},
		{"DELETE", "/share/import"},
		{"POST", "/lists/test-id/share"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

// TestShareRoundTrip builds a list over HTTP, exports it, and imports it
// back as a new list.
func TestShareRoundTrip(t *testing.T) {
	mux := newTestRouter(t)

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		return w
	}

	w := do("POST", "/lists", models.CreateListRequest{Name: "Weekly basket"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var list models.ShoppingList
	testutil.AssertJSON(t, w, &list)

	qty := 2.0
	w = do("POST", "/lists/"+list.ID+"/items", models.CreateItemRequest{Name: "Milk", Quantity: &qty, Scope: "Breakfast"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var milk models.Item
	testutil.AssertJSON(t, w, &milk)

	w = do("POST", "/lists/"+list.ID+"/items", models.CreateItemRequest{Name: "Birthday candles", Unit: "box", Category: "Party", Comment: "blue"})
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = do("POST", "/items/"+milk.ID+"/toggle", models.ToggleItemRequest{Purchased: true})
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", "/lists/"+list.ID+"/share", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var exported models.ShareResponse
	testutil.AssertJSON(t, w, &exported)

	w = do("POST", "/share/preview", models.PreviewShareRequest{Data: exported.ShareURL})
	testutil.AssertStatus(t, w, http.StatusOK)
	var preview share.SharePayload
	testutil.AssertJSON(t, w, &preview)

	expected := []share.ShareItem{
		{Name: "Milk", Quantity: 2, Unit: "l", Category: "Dairy", Scope: "Breakfast", Purchased: true},
		{Name: "Birthday candles", Quantity: 1, Unit: "box", Category: "Party", Comment: "blue"},
	}
	if preview.ListName != "Weekly basket" || len(preview.Items) != len(expected) {
		t.Fatalf("Unexpected preview %+v", preview)
	}
	for i := range expected {
		if preview.Items[i] != expected[i] {
			t.Errorf("Item %d: expected %+v, got %+v", i, expected[i], preview.Items[i])
		}
	}

	w = do("POST", "/share/import", models.ImportShareRequest{Data: exported.Data, Mode: "new"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var imported models.ImportShareResponse
	testutil.AssertJSON(t, w, &imported)
	if imported.Imported != 2 || imported.ListID == list.ID {
		t.Fatalf("Unexpected import result %+v", imported)
	}

	w = do("GET", "/lists/"+imported.ListID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var copied models.ListWithItems
	testutil.AssertJSON(t, w, &copied)
	if copied.List.Name != "Weekly basket" || len(copied.Items) != 2 {
		t.Fatalf("Unexpected imported list %+v", copied)
	}
	if !copied.Items[0].Purchased || copied.Items[1].Comment != "blue" {
		t.Errorf("Expected purchased flag and comment to survive, got %+v", copied.Items)
	}
}
