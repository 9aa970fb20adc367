// Package txn is the per-transaction read/write tracking state machine
// used by a database's concurrency-control layer. For each active
// transaction it records every tuple-level interaction (read,
// read-for-update, update, insert, delete) and enforces that those
// interactions evolve only along legal transitions.
//
// The package does not do durability, locking, MVCC version chaining,
// SQL parsing, or physical tuple layout; it is a pure in-memory
// bookkeeping structure consumed by commit validation, garbage
// collection, and the trigger subsystem, all of which live outside
// this package.
package txn
