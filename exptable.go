// Package exptable records the inputs and outputs of function calls
// into SQLite tables whose schema is derived from a declared
// signature.
//
// Declare a signature once, open a store, and wrap the function:
//
//	sig := exptable.Signature{
//		Params: []exptable.Field{
//			{Name: "a", Type: exptable.Int},
//			{Name: "b", Type: exptable.Int},
//		},
//		Results: []exptable.Field{
//			{Name: "quot", Type: exptable.Int},
//			{Name: "rem", Type: exptable.Text},
//		},
//	}
//
//	st, err := exptable.Open("experiments.db")
//	rec := exptable.NewRecorder(st, "div_rem", sig)
//	divRem := exptable.Wrap2(rec, func(a, b int64) (DivRem, error) { ... })
//
// Every successful call of divRem appends one row (a, b, quot, rem)
// to the div_rem table, creating the table on the first call. The
// wrapped function's return value is unchanged.
package exptable

import (
	"context"

	"exptable/internal/record"
	"exptable/internal/schema"
	"exptable/internal/store"
)

// Re-exported declaration and recording types.
type (
	Kind      = schema.Kind
	Type      = schema.Type
	Field     = schema.Field
	Signature = schema.Signature
	Store     = store.Store
	Recorder  = record.Recorder
	Func      = record.Func
)

// The four primitive declared types.
var (
	Int   = schema.Int
	Float = schema.Float
	Text  = schema.Text
	Blob  = schema.Blob
)

// Optional makes a primitive type's column admit NULL.
func Optional(t Type) Type {
	return schema.Optional(t)
}

// Open creates or opens a recording database at path.
func Open(path string) (*Store, error) {
	return store.Open(path)
}

// NewRecorder creates a recorder writing calls of sig into table.
func NewRecorder(st *Store, table string, sig Signature) *Recorder {
	return record.New(st, table, sig)
}

// Wrap1 wraps a one-argument function so every successful call is
// recorded through r.
func Wrap1[A1, R any](r *Recorder, fn func(A1) (R, error)) func(context.Context, A1) (R, error) {
	return record.Wrap1(r, fn)
}

// Wrap2 wraps a two-argument function so every successful call is
// recorded through r.
func Wrap2[A1, A2, R any](r *Recorder, fn func(A1, A2) (R, error)) func(context.Context, A1, A2) (R, error) {
	return record.Wrap2(r, fn)
}

// Wrap3 wraps a three-argument function so every successful call is
// recorded through r.
func Wrap3[A1, A2, A3, R any](r *Recorder, fn func(A1, A2, A3) (R, error)) func(context.Context, A1, A2, A3) (R, error) {
	return record.Wrap3(r, fn)
}
