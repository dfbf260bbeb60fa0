// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/basketry/catalog"
	"github.com/danielhkuo/basketry/cliparse"
	"github.com/danielhkuo/basketry/middleware"
	"github.com/danielhkuo/basketry/models"
	"github.com/danielhkuo/basketry/share"
	"github.com/danielhkuo/basketry/store"
)

type ItemHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewItemHandler(st *store.Store, cat *catalog.Catalog, cfg cliparse.Config) *ItemHandler {
	return &ItemHandler{store: st, catalog: cat, cfg: cfg}
}

// CreateItem handles POST /lists/{id}/items
// Empty unit and category are filled from the catalog entry matching the
// item name, or from category keywords
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	quantity := 1.0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if _, err := h.store.GetList(r.Context(), listID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "List not found")
			return
		}
		slog.Error("failed to query list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	fields, err := h.resolveItem(r.Context(), name, req, requestLocale(r, h.cfg))
	if err != nil {
		slog.Error("failed to resolve item references", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}
	fields.Quantity = quantity

	item, err := h.store.CreateItem(r.Context(), listID, fields)
	if err != nil {
		slog.Error("failed to create item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	slog.Info("item added", "list_id", listID, "item_id", item.ID)

	middleware.JSONResponse(w, http.StatusCreated, item)
}

func (h *ItemHandler) resolveItem(ctx context.Context, name string, req models.CreateItemRequest, locale catalog.Locale) (models.ItemFields, error) {
	match := h.catalog.FindByName(name, locale)

	var categoryID string
	switch {
	case req.Category != "":
		category, err := h.store.EnsureCategory(ctx, req.Category)
		if err != nil {
			return models.ItemFields{}, fmt.Errorf("failed to ensure category: %w", err)
		}
		categoryID = category.ID
	case match != nil:
		categoryID = match.Category
	default:
		categoryID = h.catalog.ResolveCategory(name, locale)
		if categoryID == "" {
			category, err := h.store.EnsureCategory(ctx, share.DefaultCategory)
			if err != nil {
				return models.ItemFields{}, fmt.Errorf("failed to ensure category: %w", err)
			}
			categoryID = category.ID
		}
	}

	var unitID string
	if req.Unit == "" && match != nil {
		unitID = match.Unit
	} else {
		unitName := req.Unit
		if unitName == "" {
			unitName = share.DefaultUnit
		}
		unit, err := h.store.EnsureUnit(ctx, unitName)
		if err != nil {
			return models.ItemFields{}, fmt.Errorf("failed to ensure unit: %w", err)
		}
		unitID = unit.ID
	}

	productID := ""
	if match != nil {
		productID = match.ID
	} else {
		product, err := h.store.EnsureProduct(ctx, name, categoryID, unitID)
		if err != nil {
			return models.ItemFields{}, fmt.Errorf("failed to ensure product: %w", err)
		}
		productID = product.ID
	}

	return models.ItemFields{
		ProductID:  productID,
		Name:       name,
		UnitID:     unitID,
		CategoryID: categoryID,
		Comment:    req.Comment,
		Scope:      req.Scope,
	}, nil
}

// UpdateItem handles PATCH /items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	var req models.UpdateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name cannot be empty")
		return
	}

	item, err := h.store.UpdateItem(r.Context(), itemID, models.ItemPatch{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Comment:   req.Comment,
		Scope:     req.Scope,
		Purchased: req.Purchased,
	})
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to update item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}

// ToggleItem handles POST /items/{id}/toggle
func (h *ItemHandler) ToggleItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	var req models.ToggleItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.store.ToggleItem(r.Context(), itemID, req.Purchased)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")

	if err := h.store.DeleteItem(r.Context(), itemID); err != nil {
		slog.Error("failed to delete item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
