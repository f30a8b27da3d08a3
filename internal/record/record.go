package record

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"exptable/internal/schema"
	"exptable/internal/sqlgen"
	"exptable/internal/store"
)

// Func is the untyped calling convention: positional arguments in
// declared parameter order, a result value exposing the declared
// return fields, and an error. The typed wrappers in wrap.go restore
// compile-checked call sites on top of it.
type Func func(args ...any) (any, error)

// Recorder records calls of one signature into one table.
// It holds no per-call state; every Call rederives its statements from
// the signature.
type Recorder struct {
	store *store.Store
	table string
	sig   schema.Signature
	log   *slog.Logger
}

// New creates a Recorder writing to the named table through st.
func New(st *store.Store, table string, sig schema.Signature) *Recorder {
	return &Recorder{
		store: st,
		table: table,
		sig:   sig,
		log:   slog.Default(),
	}
}

// Call invokes fn with args and appends one row for the invocation.
//
// The sequence per call:
//  1. Bind args against the declared parameters (count must match).
//  2. Invoke fn. A callee error is returned unmodified and nothing is
//     persisted.
//  3. Ensure the table exists (created lazily on the first call).
//  4. Derive the insert plan and collect argument values in parameter
//     order, then result-field values in declaration order.
//  5. Execute one parameterized INSERT. Storage errors propagate; no
//     retry, no partial-write cleanup.
//
// The result value is returned to the caller unchanged.
func (r *Recorder) Call(ctx context.Context, fn Func, args ...any) (any, error) {
	bound, err := r.bind(args)
	if err != nil {
		return nil, err
	}

	result, err := fn(args...)
	if err != nil {
		return result, err
	}

	createSQL := sqlgen.CreateTable(r.table, r.sig)
	if err := r.store.EnsureTable(ctx, r.table, createSQL); err != nil {
		return nil, err
	}

	plan := sqlgen.BuildInsertPlan(r.table, r.sig)

	values := make([]any, 0, len(plan.ArgColumns)+len(plan.ReturnColumns))
	for _, name := range plan.ArgColumns {
		values = append(values, bound[name])
	}
	retValues, err := resultValues(result, plan.ReturnColumns)
	if err != nil {
		return nil, err
	}
	values = append(values, retValues...)

	if _, err := r.store.Exec(ctx, plan.SQL, values...); err != nil {
		return nil, fmt.Errorf("record call into %s: %w", r.table, err)
	}

	r.log.Debug("call recorded",
		"table", r.table,
		"call", uuid.NewString(),
		"columns", len(values))

	return result, nil
}

// bind maps positional arguments onto declared parameter names.
// Signatures are declared explicitly, so there is no variadic form to
// misderive; the only mismatch left is an argument-count error, which
// is rejected before the callee runs.
func (r *Recorder) bind(args []any) (map[string]any, error) {
	if len(args) != len(r.sig.Params) {
		return nil, &BindingError{Table: r.table, Want: len(r.sig.Params), Got: len(args)}
	}
	bound := make(map[string]any, len(args))
	for i, p := range r.sig.Params {
		bound[p.Name] = args[i]
	}
	return bound, nil
}

// resultValues reads the declared return fields off the result value,
// in declaration order. Field names are matched case-insensitively,
// as encoding/json does, so a declared field "quot" binds to struct
// field Quot. A missing or unexported field is a contract violation
// by the callee's declarer.
func resultValues(result any, fields []string) ([]any, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, &MissingFieldError{Field: fields[0], Reason: "result is nil"}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, &MissingFieldError{
			Field:  fields[0],
			Reason: fmt.Sprintf("result is %T, not a struct", result),
		}
	}

	values := make([]any, 0, len(fields))
	for _, name := range fields {
		f := v.FieldByNameFunc(func(n string) bool {
			return strings.EqualFold(n, name)
		})
		if !f.IsValid() {
			return nil, &MissingFieldError{Field: name, Reason: "no such field on result"}
		}
		if !f.CanInterface() {
			return nil, &MissingFieldError{Field: name, Reason: "field is unexported"}
		}
		values = append(values, f.Interface())
	}
	return values, nil
}
