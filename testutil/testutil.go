// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/pickem/cliparse"
	"github.com/danielhkuo/pickem/db"
	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/store"
)

// SetupTestDB creates a throwaway SQLite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pickem_test.db")
	conn, err := db.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore creates a Store over a throwaway database.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3418,
		DatabaseType: "sqlite",
		DatabaseURL:  "pickem_test.db",
		AdminPass:    "test-passphrase",
	}
}

// SeedSchedule replaces the schedule through the store's administrative path.
// Note this resets picks and tiebreakers, so seed the schedule first.
func SeedSchedule(t *testing.T, st *store.Store, sched models.Schedule) {
	t.Helper()

	raw, err := json.Marshal(sched)
	if err != nil {
		t.Fatalf("Failed to marshal schedule: %v", err)
	}
	if err := st.ReplaceSchedule(raw); err != nil {
		t.Fatalf("Failed to seed schedule: %v", err)
	}
}

// SeedResults replaces the result set from a raw JSON document.
func SeedResults(t *testing.T, st *store.Store, doc string) {
	t.Helper()

	if err := st.ReplaceResults([]byte(doc)); err != nil {
		t.Fatalf("Failed to seed results: %v", err)
	}
}

// SeedPick records one local pick, failing the test on error.
func SeedPick(t *testing.T, st *store.Store, week string, position int, side string) {
	t.Helper()

	if err := st.SetPick(week, position, side); err != nil {
		t.Fatalf("Failed to seed pick: %v", err)
	}
}

// ImportParticipant appends an imported pick set, failing the test on error.
func ImportParticipant(t *testing.T, st *store.Store, doc string) models.Participant {
	t.Helper()

	p, err := st.ImportParticipant([]byte(doc))
	if err != nil {
		t.Fatalf("Failed to import participant: %v", err)
	}
	return p
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
