package exptable_test

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exptable"
)

type DivRem struct {
	Quot int64
	Rem  string
}

func TestRecordedFunction(t *testing.T) {
	st, err := exptable.Open(filepath.Join(t.TempDir(), "experiments.db"))
	require.NoError(t, err)
	defer st.Close()

	sig := exptable.Signature{
		Params: []exptable.Field{
			{Name: "a", Type: exptable.Int},
			{Name: "b", Type: exptable.Int},
		},
		Results: []exptable.Field{
			{Name: "quot", Type: exptable.Int},
			{Name: "rem", Type: exptable.Text},
		},
	}

	rec := exptable.NewRecorder(st, "div_rem", sig)
	divRem := exptable.Wrap2(rec, func(a, b int64) (DivRem, error) {
		return DivRem{Quot: a / b, Rem: strconv.FormatInt(a%b, 10)}, nil
	})

	ctx := context.Background()

	got, err := divRem(ctx, 12, 5)
	require.NoError(t, err)
	assert.Equal(t, DivRem{Quot: 2, Rem: "2"}, got)

	got, err = divRem(ctx, 20, 7)
	require.NoError(t, err)
	assert.Equal(t, DivRem{Quot: 2, Rem: "6"}, got)

	rows, err := st.DB().Query("SELECT a, b, quot, rem FROM div_rem ORDER BY rowid")
	require.NoError(t, err)
	defer rows.Close()

	var persisted []DivRem
	var args [][2]int64
	for rows.Next() {
		var a, b int64
		var r DivRem
		require.NoError(t, rows.Scan(&a, &b, &r.Quot, &r.Rem))
		args = append(args, [2]int64{a, b})
		persisted = append(persisted, r)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, [][2]int64{{12, 5}, {20, 7}}, args)
	assert.Equal(t, []DivRem{{Quot: 2, Rem: "2"}, {Quot: 2, Rem: "6"}}, persisted)
}

func TestOptionalType(t *testing.T) {
	typ := exptable.Optional(exptable.Float)
	assert.True(t, typ.Nullable)
	assert.Panics(t, func() { exptable.Optional(typ) })
}
