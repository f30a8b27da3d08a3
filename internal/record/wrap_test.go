package record

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exptable/internal/schema"
)

type squareResult struct {
	Squared int64
}

func squareSig() schema.Signature {
	return schema.Signature{
		Params: []schema.Field{
			{Name: "x", Type: schema.Int},
		},
		Results: []schema.Field{
			{Name: "squared", Type: schema.Int},
		},
	}
}

type clampResult struct {
	Out float64
}

func clampSig() schema.Signature {
	return schema.Signature{
		Params: []schema.Field{
			{Name: "v", Type: schema.Float},
			{Name: "lo", Type: schema.Float},
			{Name: "hi", Type: schema.Float},
		},
		Results: []schema.Field{
			{Name: "out", Type: schema.Float},
		},
	}
}

func TestWrap2_RecordsAndReturnsUnchanged(t *testing.T) {
	st := openTestStore(t)
	rec := New(st, "div_rem", divRemSig())

	divRem := Wrap2(rec, func(a, b int64) (divRemResult, error) {
		return divRemResult{
			Quot: a / b,
			Rem:  strconv.FormatInt(a%b, 10),
		}, nil
	})

	ctx := context.Background()

	got, err := divRem(ctx, 12, 5)
	require.NoError(t, err)
	assert.Equal(t, divRemResult{Quot: 2, Rem: "2"}, got)

	got, err = divRem(ctx, 20, 7)
	require.NoError(t, err)
	assert.Equal(t, divRemResult{Quot: 2, Rem: "6"}, got)

	assert.Equal(t, []divRemRow{
		{a: 12, b: 5, quot: 2, rem: "2"},
		{a: 20, b: 7, quot: 2, rem: "6"},
	}, readDivRemRows(t, st))
}

func TestWrap2_CalleeErrorPassesThrough(t *testing.T) {
	st := openTestStore(t)
	rec := New(st, "div_rem", divRemSig())

	calleeErr := errors.New("no dividing today")
	divRem := Wrap2(rec, func(a, b int64) (divRemResult, error) {
		return divRemResult{}, calleeErr
	})

	got, err := divRem(context.Background(), 12, 5)
	assert.ErrorIs(t, err, calleeErr)
	assert.Equal(t, divRemResult{}, got)
	assert.Len(t, readDivRemRows(t, st), 0)
}

func TestWrap1(t *testing.T) {
	st := openTestStore(t)

	rec := New(st, "squares", squareSig())
	square := Wrap1(rec, func(x int64) (squareResult, error) {
		return squareResult{Squared: x * x}, nil
	})

	got, err := square(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, squareResult{Squared: 16}, got)

	var x, squared int64
	require.NoError(t, st.DB().QueryRow("SELECT x, squared FROM squares").Scan(&x, &squared))
	assert.Equal(t, int64(4), x)
	assert.Equal(t, int64(16), squared)
}

func TestWrap3(t *testing.T) {
	st := openTestStore(t)

	rec := New(st, "clamped", clampSig())
	clamp := Wrap3(rec, func(v, lo, hi float64) (clampResult, error) {
		out := max(lo, min(hi, v))
		return clampResult{Out: out}, nil
	})

	got, err := clamp(context.Background(), 7.5, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, clampResult{Out: 5}, got)
}
