// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the pick'em API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - ScheduleHandler: schedule retrieval and administrative replacement
  - PicksHandler: the local user's picks, tiebreakers and picks-file export
  - ResultsHandler: result retrieval and administrative entry
  - ParticipantsHandler: picks-file import and roster listing
  - LeaderboardHandler: ranking computation and retrieval
  - MeHandler: the local user's display name

Handlers are created via constructor functions that accept *store.Store and
Config:

	picksHandler := handlers.NewPicksHandler(st, cfg)

# Picking Flow

	GET /schedule                     → weeks with matchups and lock flags
	PUT /picks/{week}/{position}      → record a side for one matchup
	PUT /picks/{week}/tiebreaker      → record the week's tiebreaker
	GET /picks/export                 → portable picks file download

A week locks once any of its outcomes is decided; locked weeks answer 409 to
pick and tiebreaker writes. The lock is a policy of this surface — the store
underneath stays permissive.

# Administrative Flow

	PUT /admin/schedule  → replace the season and reset picks/tiebreakers
	PUT /admin/results   → replace the entire result document

Both require the X-Admin-Pass header and take the raw JSON document as the
request body. Malformed documents fail whole with the parse detail in the
error message; prior state is preserved.

# Scoring

ComputeLeaderboard in leaderboard.go is a pure function over the result set
and roster. Correct picks count one point each; the sort is stable and
descending so ties keep roster order; rank is 1-indexed by position. The
board stays hidden until at least one outcome is decided.
*/
package handlers
