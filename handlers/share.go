// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/skip2/go-qrcode"

	"github.com/danielhkuo/basketry/cliparse"
	"github.com/danielhkuo/basketry/middleware"
	"github.com/danielhkuo/basketry/models"
	"github.com/danielhkuo/basketry/share"
	"github.com/danielhkuo/basketry/store"
)

// QR image bounds in pixels
const (
	defaultQRSize = 256
	minQRSize     = 128
	maxQRSize     = 1024
)

type ShareHandler struct {
	codec     *share.Codec
	assembler *share.Assembler
	cfg       cliparse.Config
}

func NewShareHandler(st *store.Store, codec *share.Codec, cfg cliparse.Config) *ShareHandler {
	return &ShareHandler{
		codec:     codec,
		assembler: share.NewAssembler(st),
		cfg:       cfg,
	}
}

// GetShare handles GET /lists/{id}/share
// Returns the transport string for the list and a link embedding it
func (h *ShareHandler) GetShare(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	data, ok := h.encodeList(w, r, listID)
	if !ok {
		return
	}

	link, err := h.shareURL(data)
	if err != nil {
		slog.Error("failed to build share URL", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build share link")
		return
	}

	format := share.Classify(data)
	middleware.JSONResponse(w, http.StatusOK, models.ShareResponse{
		Data:       data,
		Format:     format.String(),
		Compressed: format == share.FormatCompressed,
		Size:       humanize.Bytes(uint64(len(data))),
		ShareURL:   link,
	})
}

// GetShareQR handles GET /lists/{id}/share.png?size=
// Renders the share link as a QR code
func (h *ShareHandler) GetShareQR(w http.ResponseWriter, r *http.Request) {
	listID := r.PathValue("id")

	size := defaultQRSize
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < minQRSize || n > maxQRSize {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("size must be between %d and %d", minQRSize, maxQRSize))
			return
		}
		size = n
	}

	data, ok := h.encodeList(w, r, listID)
	if !ok {
		return
	}

	link, err := h.shareURL(data)
	if err != nil {
		slog.Error("failed to build share URL", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build share link")
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		slog.Info("share link does not fit a QR code", "list_id", listID, "size", humanize.Bytes(uint64(len(link))), "error", err)
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "List is too large for a QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// PreviewShare handles POST /share/preview
// Decodes a transport string or share link without importing it
func (h *ShareHandler) PreviewShare(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewShareRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	payload, err := h.codec.Decode(transportFromInput(req.Data))
	if err != nil {
		slog.Info("rejected share payload", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Invalid share payload")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, payload)
}

// ImportShare handles POST /share/import
// Import is best-effort: items are created one by one, and a failure
// leaves the items already created in place
func (h *ShareHandler) ImportShare(w http.ResponseWriter, r *http.Request) {
	var req models.ImportShareRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	mode, err := share.ParseMode(req.Mode)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "mode must be one of: new, merge")
		return
	}

	payload, err := h.codec.Decode(transportFromInput(req.Data))
	if err != nil {
		slog.Info("rejected share payload", "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Invalid share payload")
		return
	}

	result, err := h.assembler.Apply(r.Context(), *payload, mode, req.TargetListID)
	var importErr *share.ImportError
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound) && !errors.As(err, &importErr):
		middleware.ErrorResponse(w, http.StatusNotFound, "Target list not found")
		return
	case errors.As(err, &importErr):
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			fmt.Sprintf("Import stopped after %d of %d items", importErr.Imported, len(payload.Items)))
		return
	default:
		slog.Error("failed to import share payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import list")
		return
	}

	slog.Info("share payload imported", "list_id", result.ListID, "mode", mode, "items", result.Imported)

	middleware.JSONResponse(w, http.StatusCreated, models.ImportShareResponse{
		ListID:   result.ListID,
		Imported: result.Imported,
	})
}

// encodeList writes an error response and returns false on failure.
func (h *ShareHandler) encodeList(w http.ResponseWriter, r *http.Request, listID string) (string, bool) {
	payload, err := h.assembler.Build(r.Context(), listID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "List not found")
		return "", false
	}
	if err != nil {
		slog.Error("failed to build share payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}

	data, err := h.codec.Encode(*payload)
	if err != nil {
		slog.Error("failed to encode share payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to encode list")
		return "", false
	}

	slog.Info("share payload built",
		"list_id", listID,
		"items", len(payload.Items),
		"format", share.Classify(data),
		"size", humanize.Bytes(uint64(len(data))),
	)
	return data, true
}

// shareURL returns <base>/share#<data>.
func (h *ShareHandler) shareURL(data string) (string, error) {
	base, err := url.Parse(h.cfg.ShareBaseURL)
	if err != nil {
		return "", err
	}
	link := base.JoinPath("share")
	link.Fragment = data
	return link.String(), nil
}

// transportFromInput accepts either a bare transport string or a share
// link, in which case the transport string is the link's fragment.
func transportFromInput(input string) string {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return input
	}
	u, err := url.Parse(input)
	if err != nil || u.Fragment == "" {
		return input
	}
	return u.Fragment
}
