package models

import (
	"encoding/json"
	"fmt"
)

// Side constants for a pick
const (
	SideHome = "home"
	SideAway = "away"
)

// Outcome winner values, positionally aligned with the schedule
const (
	WinnerHome = 0
	WinnerAway = 1
)

// Matchup is one scheduled contest, addressed by its position within a week.
type Matchup struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Schedule maps a week ID to that week's ordered matchups.
type Schedule map[string][]Matchup

// PickSet maps week ID -> matchup position -> side.
// Positions are stored as strings to match the persisted document shape.
type PickSet map[string]map[string]string

// TiebreakerSet maps week ID -> raw tiebreaker value (stored as text, not validated).
type TiebreakerSet map[string]string

// Outcome is a recorded winner for one matchup: home, away, or not yet decided.
// It marshals to 0, 1, or null.
type Outcome struct {
	Valid  bool
	Winner int
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Winner)
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Outcome{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("outcome must be 0, 1, or null: %w", err)
	}
	if n != WinnerHome && n != WinnerAway {
		return fmt.Errorf("outcome must be 0, 1, or null, got %d", n)
	}
	*o = Outcome{Valid: true, Winner: n}
	return nil
}

// ResultSet maps week ID -> outcomes, positionally aligned with the schedule.
// A week may be partially decided.
type ResultSet map[string][]Outcome

// Participant is a named pick set considered during scoring. Exactly one
// participant (the local user) is mutable; the rest are imported snapshots.
type Participant struct {
	ID          string
	Name        string
	Picks       PickSet
	Tiebreakers TiebreakerSet
	Imported    bool
}

// PicksFile is the portable export/import document. Picks is a pointer so an
// absent or null "picks" field can be rejected on import.
type PicksFile struct {
	Name        string        `json:"name"`
	Picks       *PickSet      `json:"picks"`
	Tiebreakers TiebreakerSet `json:"tiebreakers"`
}

// ParseSchedule validates a raw administrative schedule document. The whole
// document is rejected if it is not a JSON object of week -> [{home, away}].
func ParseSchedule(doc []byte) (Schedule, error) {
	var sched Schedule
	if err := json.Unmarshal(doc, &sched); err != nil {
		return nil, fmt.Errorf("invalid schedule document: %w", err)
	}
	if sched == nil {
		return nil, fmt.Errorf("invalid schedule document: expected an object of weeks")
	}
	return sched, nil
}

// ParseResults validates a raw administrative results document. Outcome
// values other than 0, 1, and null fail the whole document.
func ParseResults(doc []byte) (ResultSet, error) {
	var results ResultSet
	if err := json.Unmarshal(doc, &results); err != nil {
		return nil, fmt.Errorf("invalid results document: %w", err)
	}
	if results == nil {
		return nil, fmt.Errorf("invalid results document: expected an object of weeks")
	}
	return results, nil
}

// Request types

type SetPickRequest struct {
	Side string `json:"side"`
}

type SetTiebreakerRequest struct {
	Value string `json:"value"`
}

type SetNameRequest struct {
	Name string `json:"name"`
}

// Response types

// WeekGames is one schedule entry as served to the picking interface. Locked
// reports whether any matchup in the week has a decided outcome, in which
// case the interface must treat the week's picks and tiebreaker as read-only.
type WeekGames struct {
	Week   string    `json:"week"`
	Games  []Matchup `json:"games"`
	Locked bool      `json:"locked"`
}

type ScheduleResponse struct {
	Weeks []WeekGames `json:"weeks"`
}

type PicksResponse struct {
	Name        string        `json:"name"`
	Picks       PickSet       `json:"picks"`
	Tiebreakers TiebreakerSet `json:"tiebreakers"`
}

type ParticipantSummary struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Imported bool   `json:"imported"`
}

type RosterResponse struct {
	Participants []ParticipantSummary `json:"participants"`
}

type ImportParticipantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LeaderboardEntry is one ranked row. Rank is positional and 1-indexed; tied
// scores occupy adjacent positions in roster order.
type LeaderboardEntry struct {
	Rank    int    `json:"rank"`
	Place   string `json:"place"`
	Name    string `json:"name"`
	Correct int    `json:"correct"`
}

// LeaderboardResponse gates display: Visible is false until at least one
// outcome has been decided anywhere.
type LeaderboardResponse struct {
	Visible   bool               `json:"visible"`
	Standings []LeaderboardEntry `json:"standings"`
}

type NameResponse struct {
	Name string `json:"name"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
