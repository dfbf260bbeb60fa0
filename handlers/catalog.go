// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/basketry/catalog"
	"github.com/danielhkuo/basketry/cliparse"
	"github.com/danielhkuo/basketry/middleware"
	"github.com/danielhkuo/basketry/models"
	"github.com/danielhkuo/basketry/store"
)

type CatalogHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
	cfg     cliparse.Config
}

func NewCatalogHandler(st *store.Store, cat *catalog.Catalog, cfg cliparse.Config) *CatalogHandler {
	return &CatalogHandler{store: st, catalog: cat, cfg: cfg}
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.GetCategories(r.Context())
	if err != nil {
		slog.Error("failed to query categories", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, categories)
}

// GetUnits handles GET /units
func (h *CatalogHandler) GetUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.store.GetUnits(r.Context())
	if err != nil {
		slog.Error("failed to query units", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, units)
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.GetProducts(r.Context())
	if err != nil {
		slog.Error("failed to query products", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, products)
}

// Suggest handles GET /catalog/suggest?q=&locale=
// Product names in the response are localized
func (h *CatalogHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	locale := requestLocale(r, h.cfg)

	resp := models.SuggestResponse{Products: []models.Product{}}
	for _, p := range h.catalog.Suggest(query, locale) {
		resp.Products = append(resp.Products, models.Product{
			ID:         p.ID,
			Name:       p.Name(locale),
			CategoryID: p.Category,
			UnitID:     p.Unit,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// requestLocale picks the catalog locale from ?locale=, then
// Accept-Language, then the configured default.
func requestLocale(r *http.Request, cfg cliparse.Config) catalog.Locale {
	if locale, err := catalog.ParseLocale(r.URL.Query().Get("locale")); err == nil {
		return locale
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		first, _, _ := strings.Cut(header, ",")
		first, _, _ = strings.Cut(first, ";")
		if locale, err := catalog.ParseLocale(first); err == nil {
			return locale
		}
	}
	if locale, err := catalog.ParseLocale(cfg.DefaultLocale); err == nil {
		return locale
	}
	return catalog.LocaleEN
}
