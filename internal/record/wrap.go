package record

import "context"

// The WrapN adapters turn a typed function into one that behaves
// identically but persists every successful call through a Recorder.
// They exist so call sites stay compile-checked; the untyped Func
// plumbing is an implementation detail behind them.

// Wrap1 wraps a one-argument function.
func Wrap1[A1, R any](r *Recorder, fn func(A1) (R, error)) func(context.Context, A1) (R, error) {
	return func(ctx context.Context, a1 A1) (R, error) {
		res, err := r.Call(ctx, func(args ...any) (any, error) {
			return fn(args[0].(A1))
		}, a1)
		out, _ := res.(R)
		return out, err
	}
}

// Wrap2 wraps a two-argument function.
func Wrap2[A1, A2, R any](r *Recorder, fn func(A1, A2) (R, error)) func(context.Context, A1, A2) (R, error) {
	return func(ctx context.Context, a1 A1, a2 A2) (R, error) {
		res, err := r.Call(ctx, func(args ...any) (any, error) {
			return fn(args[0].(A1), args[1].(A2))
		}, a1, a2)
		out, _ := res.(R)
		return out, err
	}
}

// Wrap3 wraps a three-argument function.
func Wrap3[A1, A2, A3, R any](r *Recorder, fn func(A1, A2, A3) (R, error)) func(context.Context, A1, A2, A3) (R, error) {
	return func(ctx context.Context, a1 A1, a2 A2, a3 A3) (R, error) {
		res, err := r.Call(ctx, func(args ...any) (any, error) {
			return fn(args[0].(A1), args[1].(A2), args[2].(A3))
		}, a1, a2, a3)
		out, _ := res.(R)
		return out, err
	}
}
