// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"

	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/metrics"
	"github.com/danielhkuo/pickem/middleware"
	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/store"
)

type PicksHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPicksHandler(st *store.Store, cfg cliparse.Config) *PicksHandler {
	return &PicksHandler{store: st, cfg: cfg}
}

// GetPicks handles GET /picks
func (h *PicksHandler) GetPicks(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.PicksResponse{
		Name:        h.store.UserName(),
		Picks:       h.store.Picks(),
		Tiebreakers: h.store.Tiebreakers(),
	})
}

// SetPick handles PUT /picks/{week}/{position}
// Overwrites any prior pick at that week/position. The position is not
// bounds-checked against the schedule; a pick past the end of a week is
// stored and never scores. Weeks with a decided outcome are locked.
func (h *PicksHandler) SetPick(w http.ResponseWriter, r *http.Request) {
	week := r.PathValue("week")
	if week == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "week is required")
		return
	}

	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil || position < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position must be a non-negative integer")
		return
	}

	var req models.SetPickRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Side != models.SideHome && req.Side != models.SideAway {
		middleware.ErrorResponse(w, http.StatusBadRequest, `side must be "home" or "away"`)
		return
	}

	if weekLocked(h.store.Results(), week) {
		middleware.ErrorResponse(w, http.StatusConflict, "week "+week+" is locked: results have been recorded")
		return
	}

	if err := h.store.SetPick(week, position, req.Side); err != nil {
		slog.Error("failed to save pick", "error", err, "week", week, "position", position)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save pick")
		return
	}

	metrics.PicksRecorded.Inc()
	slog.Info("pick recorded", "week", week, "position", position, "side", req.Side)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Pick recorded",
	})
}

// SetTiebreaker handles PUT /picks/{week}/tiebreaker
// The value is stored as raw text without numeric validation; it is
// displayed only and never scored. Locked weeks reject the write.
func (h *PicksHandler) SetTiebreaker(w http.ResponseWriter, r *http.Request) {
	week := r.PathValue("week")
	if week == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "week is required")
		return
	}

	var req models.SetTiebreakerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if weekLocked(h.store.Results(), week) {
		middleware.ErrorResponse(w, http.StatusConflict, "week "+week+" is locked: results have been recorded")
		return
	}

	if err := h.store.SetTiebreaker(week, req.Value); err != nil {
		slog.Error("failed to save tiebreaker", "error", err, "week", week)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save tiebreaker")
		return
	}

	metrics.PicksRecorded.Inc()
	slog.Info("tiebreaker recorded", "week", week)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Tiebreaker recorded",
	})
}

// ExportPicks handles GET /picks/export
// Serves the local user's portable picks file as a download. The filename is
// the user name with whitespace runs replaced by underscores.
func (h *PicksHandler) ExportPicks(w http.ResponseWriter, r *http.Request) {
	file := h.store.ExportLocal()

	body, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		slog.Error("failed to encode picks export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to export picks")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFileName(file.Name)+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportFileName derives the download filename from a participant name.
func ExportFileName(name string) string {
	return whitespaceRun.ReplaceAllString(name, "_") + "_picks.json"
}
