// Package meta holds the module's tunable defaults, kept in one place
// so the engine, searcher options, and cmd/fanorona driver agree on
// them without importing each other's constants directly.
package meta

import "time"

// MaxMoves is the move-count safety cap the external game loop
// enforces: a game that reaches it without a decided winner is called
// a draw, since Fanorona has no other non-termination detection (no
// cycle or repetition check; see DESIGN.md for the rationale).
const MaxMoves = 70

// DefaultUCTDuration is the wall-clock budget a UCT player spends per
// decision when the caller does not override it.
const DefaultUCTDuration = time.Second

// DefaultPUCTIterations is the search-iteration budget a PUCT player
// spends per decision when the caller does not override it.
const DefaultPUCTIterations = 400
