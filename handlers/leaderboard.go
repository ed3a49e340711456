// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/metrics"
	"github.com/danielhkuo/pickem/middleware"
	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/store"
)

type LeaderboardHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewLeaderboardHandler(st *store.Store, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{store: st, cfg: cfg}
}

// GetLeaderboard handles GET /leaderboard
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	board := ComputeLeaderboard(h.store.Results(), h.store.Roster())
	metrics.LeaderboardComputed.Inc()
	middleware.JSONResponse(w, http.StatusOK, board)
}

// ComputeLeaderboard ranks the roster by correct-pick count against the
// recorded outcomes. It is a pure function: no store access, no side effects.
//
// Display is gated: until at least one outcome anywhere is decided, the
// board is not visible, regardless of how many picks exist.
//
// The sort is descending by correct count and stable, so participants with
// equal scores keep roster order (local user first, then imports in the
// order they arrived). Rank is positional and 1-indexed; ties occupy
// adjacent positions rather than sharing a number.
func ComputeLeaderboard(results models.ResultSet, roster []models.Participant) models.LeaderboardResponse {
	if !hasDecidedOutcome(results) {
		return models.LeaderboardResponse{
			Visible:   false,
			Standings: []models.LeaderboardEntry{},
		}
	}

	standings := make([]models.LeaderboardEntry, 0, len(roster))
	for _, p := range roster {
		standings = append(standings, models.LeaderboardEntry{
			Name:    p.Name,
			Correct: countCorrect(results, p.Picks),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Correct > standings[j].Correct
	})

	for i := range standings {
		standings[i].Rank = i + 1
		standings[i].Place = humanize.Ordinal(i + 1)
	}

	return models.LeaderboardResponse{
		Visible:   true,
		Standings: standings,
	}
}

// countCorrect walks every decided outcome and counts matching picks.
// Missing picks, unknown side values and positions beyond the pick set are
// all "not scorable", never errors. Tiebreakers are never consulted.
func countCorrect(results models.ResultSet, picks models.PickSet) int {
	correct := 0
	for week, outcomes := range results {
		weekPicks := picks[week]
		if weekPicks == nil {
			continue
		}
		for position, res := range outcomes {
			if !res.Valid {
				continue
			}
			side, ok := weekPicks[strconv.Itoa(position)]
			if !ok {
				continue
			}
			var chosen int
			switch side {
			case models.SideHome:
				chosen = models.WinnerHome
			case models.SideAway:
				chosen = models.WinnerAway
			default:
				// Anything other than home/away never matches.
				continue
			}
			if chosen == res.Winner {
				correct++
			}
		}
	}
	return correct
}

// hasDecidedOutcome reports whether any week has at least one decided
// outcome. A week whose entries are all null does not count.
func hasDecidedOutcome(results models.ResultSet) bool {
	for _, outcomes := range results {
		for _, res := range outcomes {
			if res.Valid {
				return true
			}
		}
	}
	return false
}
