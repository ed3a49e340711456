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

func TestReplaceResults(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(st, cfg)

	tests := []struct {
		name           string
		pass           string
		doc            string
		expectedStatus int
	}{
		{
			name:           "valid document",
			pass:           cfg.AdminPass,
			doc:            `{"1": [0, 1, null], "2": []}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong passphrase",
			pass:           "nope",
			doc:            `{"1": [0]}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid JSON",
			pass:           cfg.AdminPass,
			doc:            `{"1": [0,`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "outcome out of range",
			pass:           cfg.AdminPass,
			doc:            `{"1": [0, 7]}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "null document",
			pass:           cfg.AdminPass,
			doc:            `null`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("PUT", "/admin/results", strings.NewReader(tt.doc))
			if tt.pass != "" {
				req.Header.Set("X-Admin-Pass", tt.pass)
			}
			w := httptest.NewRecorder()

			handler.ReplaceResults(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// Only the valid document landed; later failures preserved it.
	results := st.Results()
	if len(results["1"]) != 3 {
		t.Fatalf("expected week 1 to keep 3 outcomes, got %d", len(results["1"]))
	}
	if !results["1"][0].Valid || results["1"][0].Winner != models.WinnerHome {
		t.Error("expected position 0 decided home")
	}
	if results["1"][2].Valid {
		t.Error("expected position 2 undecided")
	}
}

func TestGetResultsRoundTripsNulls(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(st, cfg)

	testutil.SeedResults(t, st, `{"1": [0, null, 1]}`)

	w := httptest.NewRecorder()
	handler.GetResults(w, testutil.MakeRequest("GET", "/results", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	if !strings.Contains(body, "[0,null,1]") {
		t.Errorf("expected outcomes serialized as 0/null/1, got %s", body)
	}
}

func TestWeekLocked(t *testing.T) {
	results := models.ResultSet{
		"1": {{Valid: true, Winner: 0}},
		"2": {{}, {}},
		"3": {},
	}

	tests := []struct {
		week string
		want bool
	}{
		{"1", true},
		{"2", false}, // only undecided entries
		{"3", false}, // empty outcome list
		{"4", false}, // no results at all
	}
	for _, tt := range tests {
		if got := weekLocked(results, tt.week); got != tt.want {
			t.Errorf("weekLocked(week %q): expected %v, got %v", tt.week, tt.want, got)
		}
	}
}
