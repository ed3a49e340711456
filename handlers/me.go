// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/middleware"
	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/store"
)

type MeHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewMeHandler(st *store.Store, cfg cliparse.Config) *MeHandler {
	return &MeHandler{store: st, cfg: cfg}
}

// GetMe handles GET /me
func (h *MeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.NameResponse{
		Name: h.store.UserName(),
	})
}

// SetMe handles PUT /me
// Sets the local participant's leaderboard name.
func (h *MeHandler) SetMe(w http.ResponseWriter, r *http.Request) {
	var req models.SetNameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.store.SetUserName(req.Name); err != nil {
		slog.Error("failed to save user name", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save name")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NameResponse{Name: req.Name})
}
