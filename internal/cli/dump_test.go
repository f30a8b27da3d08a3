package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exptable/internal/record"
	"exptable/internal/schema"
	"exptable/internal/store"
)

type divRemResult struct {
	Quot int64
	Rem  string
}

// recordedDatabase returns a database with two div_rem rows.
func recordedDatabase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")

	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	sig := schema.Signature{
		Params: []schema.Field{
			{Name: "a", Type: schema.Int},
			{Name: "b", Type: schema.Int},
		},
		Results: []schema.Field{
			{Name: "quot", Type: schema.Int},
			{Name: "rem", Type: schema.Text},
		},
	}
	rec := record.New(st, "div_rem", sig)

	divRem := func(args ...any) (any, error) {
		a, b := args[0].(int64), args[1].(int64)
		return divRemResult{Quot: a / b, Rem: strconv.FormatInt(a%b, 10)}, nil
	}

	ctx := context.Background()
	_, err = rec.Call(ctx, divRem, int64(12), int64(5))
	require.NoError(t, err)
	_, err = rec.Call(ctx, divRem, int64(20), int64(7))
	require.NoError(t, err)

	return path
}

func TestDumpUnknownTable(t *testing.T) {
	dbPath := recordedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDumpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", dbPath, "--table", "nope"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `no table named "nope"`)
}

func TestDumpTextOutput(t *testing.T) {
	dbPath := recordedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDumpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", dbPath, "--table", "div_rem"})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "QUOT") // tablewriter upcases headers
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "20")
}

func TestDumpJSONOutput(t *testing.T) {
	dbPath := recordedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewDumpCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", dbPath, "--table", "div_rem"})

	require.NoError(t, cmd.Execute())

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)

	// insertion order, first row unchanged by the second call
	assert.Equal(t, float64(12), rows[0]["a"])
	assert.Equal(t, "2", rows[0]["rem"])
	assert.Equal(t, float64(20), rows[1]["a"])
	assert.Equal(t, "6", rows[1]["rem"])
}

func TestTablesListsRecordedTables(t *testing.T) {
	dbPath := recordedDatabase(t)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewTablesCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--db", dbPath})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "div_rem\n", buf.String())
}

func TestTablesMissingDatabaseFlag(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewTablesCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "tables", "--db", "x.db"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}
