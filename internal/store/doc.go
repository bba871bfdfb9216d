// Package store provides the persistent record registry for stele.
//
// The package defines the [Store] interface which abstracts all persistence
// operations, allowing different storage backends to be used interchangeably.
// Currently supported backends are BoltDB (default) and SQLite.
//
// # Store Interface
//
// The [Store] interface defines methods for:
//   - Record operations (Load, Append, Update, Delete)
//   - Sync bookkeeping (Unsynced, MarkSynced)
//   - Configuration management (GetConfig, SaveConfig)
//
// # Persistence model
//
// The record collection is persisted as a single blob and fully replaced on
// every mutation, so readers never observe a partially updated collection.
// The stele counter is kept under a separate key: numbering survives even a
// corrupted collection blob, and a record's number is assigned inside the
// same transaction that persists the collection, so a failed append never
// spends a number.
//
// # Backends
//
// The backend is selected at build time using build tags:
//   - Default: BoltDB
//   - With -tags sqlite: SQLite (modernc.org/sqlite, pure Go)
//
// Construct a store once at process start with [Open] (or [NewBolt] /
// [NewSQLite] for an explicit path) and pass the handle to consumers.
package store
