// Package store owns the SQLite handle that recorded calls are
// written through.
//
// The handle is deliberately thin: Open configures the connection and
// pragmas, EnsureTable lazily creates a recorded table the first time
// a call lands in it, and Exec/Query pass statements straight through
// with positional parameters. No schema is embedded here - every
// table is created from DDL handed in by the caller, and once a table
// exists it is never altered, verified, or dropped by this package.
//
// Concurrency: the store assumes a single synchronous writer. The
// pool is pinned to one connection and there is no coordination
// between concurrent recorders; two writers racing a CREATE on the
// same table name is out of scope.
package store
