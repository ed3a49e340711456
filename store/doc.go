// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the state-owning service for the pick'em data model.

A Store wraps the key-value table and the session roster. Handlers never
touch the database directly; they go through the Store's load and mutate
methods, and tests construct isolated Stores over throwaway databases.

# Reads

Schedule, Picks, Tiebreakers, Results and UserName each load one persisted
document. A missing or unreadable row falls back silently to a default (the
built-in schedule, an empty set, "Player 1") — startup never fails on
corrupt stored state and the user is never shown a read error.

# Writes

Every mutation is write-through and atomic from the caller's perspective:

  - SetPick / SetTiebreaker: overwrite one entry, save the whole document.
  - ReplaceSchedule: validate, then save the schedule AND reset picks and
    tiebreakers in one transaction. Results and imported participants are
    deliberately not touched; that asymmetry is part of the contract.
  - ReplaceResults: validate, then replace the entire result document in a
    single row write.
  - ImportParticipant: validate name and picks, append to the in-memory
    roster. Imports live only for the process lifetime.

A failed validation or write leaves prior state fully intact.

# Roster

Roster returns the local user first, then imports in insertion order. The
scoring engine relies on that order for its stable-tie contract. Duplicate
names are allowed and never deduplicated.
*/
package store
