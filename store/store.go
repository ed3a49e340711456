// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/pickem/models"
)

// Persisted document keys, one kv row each.
const (
	keySchedule    = "pickem_schedule"
	keyPicks       = "pickem_picks"
	keyTiebreakers = "pickem_tiebreakers"
	keyResults     = "pickem_results"
	keyUserName    = "pickem_username"
)

// DefaultUserName is used until the local user sets a name.
const DefaultUserName = "Player 1"

var (
	ErrMissingName  = errors.New("picks file is missing a name")
	ErrMissingPicks = errors.New("picks file is missing picks")
)

// Store owns all application state: the five persisted documents in the
// key-value table, plus the session-scoped list of imported participants,
// which is never persisted and only ever appended to.
type Store struct {
	db *sql.DB

	mu       sync.Mutex
	imported []models.Participant
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// DefaultSchedule is the built-in season used when no schedule has been
// saved yet.
func DefaultSchedule() models.Schedule {
	return models.Schedule{
		"1": {
			{Home: "Cowboys", Away: "Giants"},
			{Home: "Packers", Away: "Bears"},
			{Home: "Chiefs", Away: "Broncos"},
		},
		"2": {
			{Home: "Patriots", Away: "Jets"},
			{Home: "Vikings", Away: "Lions"},
			{Home: "Rams", Away: "Seahawks"},
		},
		"3": {
			{Home: "Eagles", Away: "Washington"},
			{Home: "Steelers", Away: "Bengals"},
			{Home: "49ers", Away: "Cardinals"},
		},
	}
}

// execer covers *sql.DB and *sql.Tx so writes can join a transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// getRaw reads one document. Any failure (missing row, dead connection) is
// reported as absence: stored-state read problems fall back to defaults and
// are never surfaced to the user.
func (s *Store) getRaw(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		slog.Warn("failed to read stored document", "key", key, "error", err)
		return nil, false
	}
	return []byte(value), true
}

// putRaw upserts one document. The statement is valid on both SQLite and
// PostgreSQL.
func (s *Store) putRaw(ex execer, key string, value []byte) error {
	_, err := ex.Exec(`
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *Store) putJSON(key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.putRaw(s.db, key, raw)
}

// Schedule returns the stored schedule, or the built-in default when none is
// stored or the stored document is unreadable.
func (s *Store) Schedule() models.Schedule {
	raw, ok := s.getRaw(keySchedule)
	if !ok {
		return DefaultSchedule()
	}
	sched, err := models.ParseSchedule(raw)
	if err != nil {
		slog.Warn("stored schedule unreadable, using default", "error", err)
		return DefaultSchedule()
	}
	return sched
}

// Picks returns the local user's pick set, empty if none is stored.
func (s *Store) Picks() models.PickSet {
	raw, ok := s.getRaw(keyPicks)
	if !ok {
		return models.PickSet{}
	}
	var picks models.PickSet
	if err := json.Unmarshal(raw, &picks); err != nil || picks == nil {
		slog.Warn("stored picks unreadable, using empty set", "error", err)
		return models.PickSet{}
	}
	return picks
}

// Tiebreakers returns the local user's tiebreaker values, empty if none.
func (s *Store) Tiebreakers() models.TiebreakerSet {
	raw, ok := s.getRaw(keyTiebreakers)
	if !ok {
		return models.TiebreakerSet{}
	}
	var tb models.TiebreakerSet
	if err := json.Unmarshal(raw, &tb); err != nil || tb == nil {
		slog.Warn("stored tiebreakers unreadable, using empty set", "error", err)
		return models.TiebreakerSet{}
	}
	return tb
}

// Results returns the recorded outcomes, empty if none.
func (s *Store) Results() models.ResultSet {
	raw, ok := s.getRaw(keyResults)
	if !ok {
		return models.ResultSet{}
	}
	results, err := models.ParseResults(raw)
	if err != nil {
		slog.Warn("stored results unreadable, using empty set", "error", err)
		return models.ResultSet{}
	}
	return results
}

// UserName returns the local participant's display name.
func (s *Store) UserName() string {
	raw, ok := s.getRaw(keyUserName)
	if !ok || len(raw) == 0 {
		return DefaultUserName
	}
	return string(raw)
}

func (s *Store) SetUserName(name string) error {
	return s.putRaw(s.db, keyUserName, []byte(name))
}

// ReplaceSchedule wholesale-replaces the schedule from a raw administrative
// document. On success the local pick set and tiebreakers are reset in the
// same transaction, even when the new schedule is identical to the old one.
// Results and imported participants are left untouched. On any failure the
// prior schedule, picks and tiebreakers all survive.
func (s *Store) ReplaceSchedule(doc []byte) error {
	sched, err := models.ParseSchedule(doc)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("failed to encode schedule: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.putRaw(tx, keySchedule, raw); err != nil {
		return err
	}
	if err := s.putRaw(tx, keyPicks, []byte("{}")); err != nil {
		return err
	}
	if err := s.putRaw(tx, keyTiebreakers, []byte("{}")); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schedule replacement: %w", err)
	}

	slog.Info("schedule replaced", "weeks", len(sched))
	return nil
}

// SetPick records a side for one week/position, overwriting any prior value.
// No bounds check is made against the live schedule: a pick at a position
// with no matchup is stored and simply never scores. Lock policy for decided
// weeks belongs to the interactive surface, not here.
func (s *Store) SetPick(week string, position int, side string) error {
	picks := s.Picks()
	wk := picks[week]
	if wk == nil {
		wk = map[string]string{}
		picks[week] = wk
	}
	wk[strconv.Itoa(position)] = side
	return s.putJSON(keyPicks, picks)
}

// SetTiebreaker stores the raw value for a week without numeric validation.
func (s *Store) SetTiebreaker(week, value string) error {
	tb := s.Tiebreakers()
	tb[week] = value
	return s.putJSON(keyTiebreakers, tb)
}

// ReplaceResults wholesale-replaces the entire result set from a raw
// administrative document. A malformed document (including any outcome other
// than 0, 1, or null) fails the whole operation with the prior results
// intact.
func (s *Store) ReplaceResults(doc []byte) error {
	results, err := models.ParseResults(doc)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := s.putRaw(s.db, keyResults, raw); err != nil {
		return err
	}
	slog.Info("results replaced", "weeks", len(results))
	return nil
}

// ImportParticipant validates an externally supplied picks file and appends
// it to the session roster. Roster is unchanged on failure. Duplicate names
// are permitted; nothing is cross-checked against the live schedule.
func (s *Store) ImportParticipant(doc []byte) (models.Participant, error) {
	var file models.PicksFile
	if err := json.Unmarshal(doc, &file); err != nil {
		return models.Participant{}, fmt.Errorf("invalid picks file: %w", err)
	}
	if file.Name == "" {
		return models.Participant{}, ErrMissingName
	}
	if file.Picks == nil {
		return models.Participant{}, ErrMissingPicks
	}

	p := models.Participant{
		ID:          uuid.NewString(),
		Name:        file.Name,
		Picks:       *file.Picks,
		Tiebreakers: file.Tiebreakers,
		Imported:    true,
	}

	s.mu.Lock()
	s.imported = append(s.imported, p)
	s.mu.Unlock()

	slog.Info("participant imported", "id", p.ID, "name", p.Name)
	return p, nil
}

// Roster returns every participant considered during scoring: the local user
// first, then imports in insertion order.
func (s *Store) Roster() []models.Participant {
	local := models.Participant{
		Name:        s.UserName(),
		Picks:       s.Picks(),
		Tiebreakers: s.Tiebreakers(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	roster := make([]models.Participant, 0, 1+len(s.imported))
	roster = append(roster, local)
	roster = append(roster, s.imported...)
	return roster
}

// ExportLocal builds the portable picks file for the local user.
func (s *Store) ExportLocal() models.PicksFile {
	picks := s.Picks()
	return models.PicksFile{
		Name:        s.UserName(),
		Picks:       &picks,
		Tiebreakers: s.Tiebreakers(),
	}
}
