// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/basketry/catalog"
	"github.com/danielhkuo/basketry/cliparse"
	"github.com/danielhkuo/basketry/handlers"
	"github.com/danielhkuo/basketry/middleware"
	"github.com/danielhkuo/basketry/share"
	"github.com/danielhkuo/basketry/store"
)

func NewRouter(db *sql.DB, cat *catalog.Catalog, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db)
	codec := share.NewCodec(share.NewCompressor(cfg.Compression))

	// Initialize handlers
	listHandler := handlers.NewListHandler(st, cfg)
	itemHandler := handlers.NewItemHandler(st, cat, cfg)
	catalogHandler := handlers.NewCatalogHandler(st, cat, cfg)
	shareHandler := handlers.NewShareHandler(st, codec, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Lists
	mux.HandleFunc("GET /lists", middleware.WithLogging(listHandler.GetLists))
	mux.HandleFunc("POST /lists", middleware.WithLogging(listHandler.CreateList))
	mux.HandleFunc("GET /lists/{id}", middleware.WithLogging(listHandler.GetList))
	mux.HandleFunc("PUT /lists/{id}", middleware.WithLogging(listHandler.RenameList))
	mux.HandleFunc("DELETE /lists/{id}", middleware.WithLogging(listHandler.DeleteList))

	// Items
	mux.HandleFunc("POST /lists/{id}/items", middleware.WithLogging(itemHandler.CreateItem))
	mux.HandleFunc("PATCH /items/{id}", middleware.WithLogging(itemHandler.UpdateItem))
	mux.HandleFunc("DELETE /items/{id}", middleware.WithLogging(itemHandler.DeleteItem))
	mux.HandleFunc("POST /items/{id}/toggle", middleware.WithLogging(itemHandler.ToggleItem))

	// Registries and catalog
	mux.HandleFunc("GET /categories", middleware.WithLogging(catalogHandler.GetCategories))
	mux.HandleFunc("GET /units", middleware.WithLogging(catalogHandler.GetUnits))
	mux.HandleFunc("GET /products", middleware.WithLogging(catalogHandler.GetProducts))
	mux.HandleFunc("GET /catalog/suggest", middleware.WithLogging(catalogHandler.Suggest))

	// Sharing
	mux.HandleFunc("GET /lists/{id}/share", middleware.WithLogging(shareHandler.GetShare))
	mux.HandleFunc("GET /lists/{id}/share.png", middleware.WithLogging(shareHandler.GetShareQR))
	mux.HandleFunc("POST /share/preview", middleware.WithLogging(shareHandler.PreviewShare))
	mux.HandleFunc("POST /share/import", middleware.WithLogging(shareHandler.ImportShare))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("basketry API v1"))
	})

	return mux
}
