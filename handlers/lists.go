// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/basketry/cliparse"
	"github.com/danielhkuo/basketry/middleware"
	"github.com/danielhkuo/basketry/models"
	"github.com/danielhkuo/basketry/store"
)

type ListHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewListHandler(st *store.Store, cfg cliparse.Config) *ListHandler {
	return &ListHandler{store: st, cfg: cfg}
}

// GetLists handles GET /lists
func (h *ListHandler) GetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.store.GetLists(r.Context())
	if err != nil {
		slog.Error("failed to query lists", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, lists)
}

// CreateList handles POST /lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req models.CreateListRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	list, err := h.store.CreateList(r.Context(), name)
	if err != nil {
		slog.Error("failed to create list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create list")
		return
	}

	slog.Info("list created", "list_id", list.ID)

	middleware.JSONResponse(w, http.StatusCreated, list)
}

// GetList handles GET /lists/{id}
// Returns the list together with its items
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	list, err := h.store.GetList(r.Context(), listID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "List not found")
		return
	}
	if err != nil {
		slog.Error("failed to query list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	items, err := h.store.GetItemsByList(r.Context(), listID)
	if err != nil {
		slog.Error("failed to query items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListWithItems{
		List:  *list,
		Items: items,
	})
}

// RenameList handles PUT /lists/{id}
func (h *ListHandler) RenameList(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	var req models.RenameListRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	list, err := h.store.RenameList(r.Context(), listID, name)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "List not found")
		return
	}
	if err != nil {
		slog.Error("failed to rename list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to rename list")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// DeleteList handles DELETE /lists/{id}
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	if err := h.store.DeleteList(r.Context(), listID); err != nil {
		slog.Error("failed to delete list", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete list")
		return
	}

	slog.Info("list deleted", "list_id", listID)

	w.WriteHeader(http.StatusNoContent)
}
