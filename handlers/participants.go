// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/metrics"
	"github.com/danielhkuo/pickem/middleware"
	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/store"
)

type ParticipantsHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewParticipantsHandler(st *store.Store, cfg cliparse.Config) *ParticipantsHandler {
	return &ParticipantsHandler{store: st, cfg: cfg}
}

// Import handles POST /participants/import
// The body is the content of a picks file the user selected; the frontend
// reads the file and posts its text, one import per request. A document
// without a name or picks mapping is rejected and the roster is unchanged.
func (h *ParticipantsHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	p, err := h.store.ImportParticipant(body)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to import picks: "+err.Error())
		return
	}

	metrics.Imports.Inc()

	middleware.JSONResponse(w, http.StatusCreated, models.ImportParticipantResponse{
		ID:   p.ID,
		Name: p.Name,
	})
}

// List handles GET /participants
// Returns the full roster in scoring order: local user first, then imports
// in the order they arrived. Duplicate names are listed as-is.
func (h *ParticipantsHandler) List(w http.ResponseWriter, r *http.Request) {
	roster := h.store.Roster()

	response := models.RosterResponse{
		Participants: make([]models.ParticipantSummary, 0, len(roster)),
	}
	for _, p := range roster {
		response.Participants = append(response.Participants, models.ParticipantSummary{
			ID:       p.ID,
			Name:     p.Name,
			Imported: p.Imported,
		})
	}

	slog.Debug("roster listed", "participants", len(roster))
	middleware.JSONResponse(w, http.StatusOK, response)
}
