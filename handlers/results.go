// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickem/auth"
	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/metrics"
	"github.com/danielhkuo/pickem/middleware"
	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/store"
)

type ResultsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewResultsHandler(st *store.Store, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{store: st, cfg: cfg}
}

// GetResults handles GET /results
// Returns the raw result document so the frontend can highlight winners.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.store.Results())
}

// ReplaceResults handles PUT /admin/results
// The body is the entire result document: week -> (0|1|null)[]. An invalid
// shape or outcome value fails atomically with the prior results intact.
func (h *ResultsHandler) ReplaceResults(w http.ResponseWriter, r *http.Request) {
	if err := auth.ValidateAdminPass(r.Header.Get("X-Admin-Pass"), h.cfg.AdminPass); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Access denied")
		return
	}

	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := h.store.ReplaceResults(body); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to parse results JSON: "+err.Error())
		return
	}

	metrics.AdminSaves.Inc()
	slog.Info("results saved by admin")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Results saved successfully",
	})
}

// weekLocked reports whether a week has any decided outcome. Once it does,
// the picking interface treats that week's picks and tiebreaker as
// read-only; the store itself stays permissive.
func weekLocked(results models.ResultSet, week string) bool {
	for _, res := range results[week] {
		if res.Valid {
			return true
		}
	}
	return false
}
