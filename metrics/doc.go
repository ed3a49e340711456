// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics holds the Prometheus counters exposed on GET /metrics.

Counters are package-level so handlers can increment them without
plumbing; Register is called once from main. Tests that drive handlers
directly skip registration, which keeps repeated test runs from
tripping the duplicate-registration panic.
*/
package metrics
