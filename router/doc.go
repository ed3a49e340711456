// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

Uses Go 1.22+ method routing on the standard ServeMux:

	GET  /health
	GET  /metrics
	GET  /schedule
	PUT  /admin/schedule
	GET  /results
	PUT  /admin/results
	GET  /picks
	GET  /picks/export
	PUT  /picks/{week}/tiebreaker
	PUT  /picks/{week}/{position}
	POST /participants/import
	GET  /participants
	GET  /leaderboard
	GET  /me
	PUT  /me

Admin routes require the X-Admin-Pass header. All handlers except health,
metrics and the root banner are wrapped with request logging.
*/
package router
