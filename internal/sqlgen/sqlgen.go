// Package sqlgen renders the DDL and DML a recorded table needs from a
// declared signature. Statement text and binding-order metadata come
// from one pass over one column derivation, so the two cannot disagree
// on ordering - that ordering agreement is the correctness-critical
// invariant of the whole recorder.
package sqlgen

import (
	"strings"

	"exptable/internal/schema"
)

// CreateTable renders the CREATE TABLE statement for a signature:
// argument columns in call order, then return-field columns in
// declaration order, one column per line. The text is deterministic
// for a given signature; the lifecycle layer relies on that when it
// skips creation for an existing table.
func CreateTable(table string, sig schema.Signature) string {
	cols := append(schema.ParamColumns(sig), schema.ResultColumns(sig)...)

	lines := make([]string, len(cols))
	for i, col := range cols {
		lines[i] = col.CreateLine()
	}
	return "CREATE TABLE " + table + "(\n" + strings.Join(lines, ",\n") + "\n)"
}

// InsertPlan carries a parameterized INSERT statement together with
// the column-name order needed to bind one call's values: argument
// columns first, return columns second, matching the CREATE TABLE
// column order exactly.
type InsertPlan struct {
	SQL           string
	ArgColumns    []string
	ReturnColumns []string
}

// BuildInsertPlan derives the INSERT statement and binding order for a
// signature. Values are always bound through positional placeholders,
// never interpolated.
func BuildInsertPlan(table string, sig schema.Signature) InsertPlan {
	argCols := schema.ParamColumns(sig)
	retCols := schema.ResultColumns(sig)

	names := make([]string, 0, len(argCols)+len(retCols))
	argNames := make([]string, 0, len(argCols))
	retNames := make([]string, 0, len(retCols))
	for _, c := range argCols {
		names = append(names, c.Name)
		argNames = append(argNames, c.Name)
	}
	for _, c := range retCols {
		names = append(names, c.Name)
		retNames = append(retNames, c.Name)
	}

	placeholders := make([]string, len(names))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	sql := "INSERT INTO " + table + "(" + strings.Join(names, ", ") + ")\n" +
		"VALUES (" + strings.Join(placeholders, ", ") + ")"

	return InsertPlan{
		SQL:           sql,
		ArgColumns:    argNames,
		ReturnColumns: retNames,
	}
}
