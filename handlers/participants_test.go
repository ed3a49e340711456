// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/pickem/models"
	"github.com/danielhkuo/pickem/testutil"
)

func TestImportParticipant(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewParticipantsHandler(st, cfg)

	tests := []struct {
		name           string
		doc            string
		expectedStatus int
	}{
		{
			name:           "valid picks file",
			doc:            `{"name": "Alex", "picks": {"1": {"0": "away"}}, "tiebreakers": {"1": "40"}}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "tiebreakers optional",
			doc:            `{"name": "Sam", "picks": {}}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate name allowed",
			doc:            `{"name": "Alex", "picks": {}}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing picks",
			doc:            `{"name": "NoPicks"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing name",
			doc:            `{"picks": {"1": {"0": "home"}}}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			doc:            `{"name": "Broken"`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/participants/import", strings.NewReader(tt.doc))
			w := httptest.NewRecorder()

			handler.Import(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.ImportParticipantResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.ID == "" {
					t.Error("expected participant ID in response")
				}
			}
		})
	}

	// Scenario D: failed imports left the roster length unchanged — only
	// the three successes are present, plus the local user.
	roster := st.Roster()
	if len(roster) != 4 {
		t.Fatalf("expected 4 roster entries, got %d", len(roster))
	}
}

func TestListParticipants(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewParticipantsHandler(st, cfg)

	testutil.ImportParticipant(t, st, `{"name": "Sam", "picks": {}}`)
	testutil.ImportParticipant(t, st, `{"name": "Alex", "picks": {}}`)

	w := httptest.NewRecorder()
	handler.List(w, testutil.MakeRequest("GET", "/participants", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.RosterResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Participants) != 3 {
		t.Fatalf("expected 3 participants, got %d", len(resp.Participants))
	}
	if resp.Participants[0].Name != "Player 1" || resp.Participants[0].Imported {
		t.Error("expected local user first and not imported")
	}
	if resp.Participants[1].Name != "Sam" || !resp.Participants[1].Imported {
		t.Error("expected Sam second, imported")
	}
	if resp.Participants[2].Name != "Alex" {
		t.Error("expected Alex third")
	}
}
