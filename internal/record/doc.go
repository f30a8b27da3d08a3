// Package record persists the inputs and outputs of function calls as
// rows in a recorded table.
//
// A Recorder pairs a store, a table name, and a declared signature.
// Each Call binds the supplied arguments against the signature,
// invokes the function, ensures the table exists, and appends exactly
// one row: argument values in parameter order followed by result
// fields in declaration order. A call either contributes exactly one
// row or none - a failing callee, a binding mismatch, or a storage
// error all leave the table untouched for that call.
//
// Nothing is cached between calls: statement text is rederived from
// the signature every time. The derivation is deterministic and cheap
// next to the storage round-trip.
package record
