// Package tinytxn is the per-transaction read/write tracking state
// machine used by a database's concurrency-control layer: for each
// active transaction it records every tuple-level interaction and
// enforces that those interactions evolve only along legal transitions.
//
// It is deliberately narrow. Out of scope: the query planner, plan
// executors, the on-disk storage layer, the transaction manager that
// hands out timestamps and coordinates commit/abort, and the trigger
// evaluator itself. This module specifies only the interfaces the core
// exposes to those collaborators.
//
// The module is organized into the following packages:
//
//   - txn: the core state machine (identity/timestamps, the action
//     matrix, GC bookkeeping, deferred triggers, and the Context that
//     composes them).
//   - config: toml-loadable settings for the demo harness below.
//   - internal/adminserver: a read-only HTTP surface for inspecting
//     live transaction contexts, standing in for the debugging surface
//     a real transaction manager would expose.
//   - cmd/txnsim: a small command-line harness that plays the role of a
//     toy executor, driving txn.Context through scripted scenarios.
package tinytxn
