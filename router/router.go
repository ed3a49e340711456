// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/handlers"
	"github.com/danielhkuo/pickem/middleware"
	"github.com/danielhkuo/pickem/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scheduleHandler := handlers.NewScheduleHandler(st, cfg)
	picksHandler := handlers.NewPicksHandler(st, cfg)
	resultsHandler := handlers.NewResultsHandler(st, cfg)
	participantsHandler := handlers.NewParticipantsHandler(st, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(st, cfg)
	meHandler := handlers.NewMeHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	mux.Handle("GET /metrics", promhttp.Handler())

	// Schedule (read for everyone, replace for the admin)
	mux.HandleFunc("GET /schedule", middleware.WithLogging(scheduleHandler.GetSchedule))
	mux.HandleFunc("PUT /admin/schedule", middleware.WithLogging(scheduleHandler.ReplaceSchedule))

	// Results (read for everyone, entry for the admin)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("PUT /admin/results", middleware.WithLogging(resultsHandler.ReplaceResults))

	// Local user's picks. The literal "tiebreaker" segment wins over the
	// {position} wildcard, so both routes can coexist.
	mux.HandleFunc("GET /picks", middleware.WithLogging(picksHandler.GetPicks))
	mux.HandleFunc("GET /picks/export", middleware.WithLogging(picksHandler.ExportPicks))
	mux.HandleFunc("PUT /picks/{week}/tiebreaker", middleware.WithLogging(picksHandler.SetTiebreaker))
	mux.HandleFunc("PUT /picks/{week}/{position}", middleware.WithLogging(picksHandler.SetPick))

	// Roster
	mux.HandleFunc("POST /participants/import", middleware.WithLogging(participantsHandler.Import))
	mux.HandleFunc("GET /participants", middleware.WithLogging(participantsHandler.List))

	// Leaderboard
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaderboard))

	// Local user name
	mux.HandleFunc("GET /me", middleware.WithLogging(meHandler.GetMe))
	mux.HandleFunc("PUT /me", middleware.WithLogging(meHandler.SetMe))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pickem API v1"))
	})

	return mux
}
