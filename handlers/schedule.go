// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/danielhkuo/pickem/auth"
	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/metrics"
	"github.com/danielhkuo/pickem/middleware"
	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/store"
)

type ScheduleHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewScheduleHandler(st *store.Store, cfg cliparse.Config) *ScheduleHandler {
	return &ScheduleHandler{store: st, cfg: cfg}
}

// GetSchedule handles GET /schedule
// Weeks are returned sorted ascending, with the lock flag the picking
// interface must honor.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sched := h.store.Schedule()
	results := h.store.Results()

	weeks := sortedWeeks(sched)
	response := models.ScheduleResponse{Weeks: make([]models.WeekGames, 0, len(weeks))}
	for _, week := range weeks {
		response.Weeks = append(response.Weeks, models.WeekGames{
			Week:   week,
			Games:  sched[week],
			Locked: weekLocked(results, week),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, response)
}

// ReplaceSchedule handles PUT /admin/schedule
// The body is the raw schedule JSON exactly as typed into the admin editor.
// A malformed document fails whole with the parse detail; on success the
// local picks and tiebreakers are reset, results and imports are not.
func (h *ScheduleHandler) ReplaceSchedule(w http.ResponseWriter, r *http.Request) {
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

	if err := h.store.ReplaceSchedule(body); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to parse schedule JSON: "+err.Error())
		return
	}

	metrics.AdminSaves.Inc()
	slog.Info("schedule saved by admin")

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Schedule saved successfully",
	})
}

// sortedWeeks orders week IDs ascending by numeric value. Non-numeric IDs
// sort after numeric ones, lexicographically, so the order is total for any
// schedule an admin might save.
func sortedWeeks(sched models.Schedule) []string {
	weeks := make([]string, 0, len(sched))
	for week := range sched {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weekLess(weeks[i], weeks[j])
	})
	return weeks
}

func weekLess(a, b string) bool {
	an, aerr := strconv.Atoi(a)
	bn, berr := strconv.Atoi(b)
	switch {
	case aerr == nil && berr == nil:
		if an != bn {
			return an < bn
		}
		return a < b
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}
