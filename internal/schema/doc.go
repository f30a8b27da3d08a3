// Package schema declares the type vocabulary for recorded tables.
//
// A recorded function's shape is described by a Signature: an ordered
// list of named parameters and an ordered list of named return fields,
// each carrying one of four primitive kinds (Int, Float, Text, Blob),
// optionally wrapped in a single level of Optional.
//
// The mapping onto SQLite is fixed:
//
//	Int   -> INTEGER NOT NULL
//	Float -> REAL    NOT NULL
//	Text  -> TEXT    NOT NULL
//	Blob  -> BLOB    NOT NULL
//
// Optional keeps the SQL type and drops NOT NULL. There is no deeper
// nesting: Optional of Optional is a programmer error and panics at
// declaration time, as does mapping a Kind outside the four above.
// Declarations are data, not reflection - a Signature is written out
// explicitly (or loaded from a sigfile), so order is fixed at
// declaration time and derivation is deterministic.
package schema
