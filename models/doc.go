// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the typed document shapes shared across the server.

# Persisted Documents

Five documents are persisted, one per key-value row:

  - Schedule: week ID -> ordered matchups ({home, away})
  - PickSet: week ID -> position -> "home"|"away"
  - TiebreakerSet: week ID -> raw text value
  - ResultSet: week ID -> (0|1|null)[] aligned with the schedule
  - user name: plain string

Matchups have no durable identifier of their own; their zero-based position
within the week is the only address picks and results refer to. Replacing the
schedule therefore invalidates alignment for any pick or result whose position
now points at a different or absent matchup. That is accepted: stale positions
simply never score.

# Outcome

Outcome is a null-aware winner value. It marshals to 0 (home won), 1 (away
won), or null (undecided). Unmarshalling rejects any other value, which gives
administrative results entry its boundary validation for free.

# Boundary Parsing

ParseSchedule and ParseResults validate raw administrative JSON and return a
typed document or a descriptive error. A malformed document fails whole; the
caller keeps its prior state.

# Portable Picks File

PicksFile is the export/import shape:

	{"name": ..., "picks": {...}, "tiebreakers": {...}}

Picks is a pointer so import can distinguish a missing or null "picks" field
(rejected) from an empty object (accepted).
*/
package models
