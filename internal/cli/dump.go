package cli

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"exptable/internal/store"
)

// DumpOptions holds flags for the dump command.
type DumpOptions struct {
	*RootOptions
	Database string
	Table    string
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DumpOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump all rows of one recorded table",
		Long: `Dump every row of a recorded table in insertion order.

Text output renders an aligned table; json output renders an array of
objects keyed by column name.

Examples:
  exptable dump --db ./experiments.db --table div_rem
  exptable dump --db ./experiments.db --table div_rem --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Table, "table", "", "table to dump (required)")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func runDump(opts *DumpOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer st.Close()

	ctx := context.Background()

	// A table identifier cannot be bound as a statement parameter, so
	// the name is checked against the catalog before interpolation.
	ok, err := st.HasTable(ctx, opts.Table)
	if err != nil {
		return WrapExitError(ExitFailure, "check table", err)
	}
	if !ok {
		return WrapExitError(ExitCommandError, fmt.Sprintf("no table named %q", opts.Table), nil)
	}

	columns, rows, err := readRows(ctx, st, opts.Table)
	if err != nil {
		return WrapExitError(ExitFailure, "read rows", err)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		objects := make([]map[string]any, len(rows))
		for i, row := range rows {
			obj := make(map[string]any, len(columns))
			for j, col := range columns {
				obj[col] = row[j]
			}
			objects[i] = obj
		}
		return writeJSON(out, objects)
	}

	w := tablewriter.NewWriter(out)
	w.SetHeader(columns)
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = renderCell(v)
		}
		w.Append(cells)
	}
	w.Render()
	return nil
}

// readRows returns the table's column names and every row's values in
// insertion (rowid) order.
func readRows(ctx context.Context, st *store.Store, table string) ([]string, [][]any, error) {
	rows, err := st.Query(ctx, "SELECT * FROM "+table+" ORDER BY rowid")
	if err != nil {
		return nil, nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("columns of %s: %w", table, err)
	}

	var values [][]any
	for rows.Next() {
		row := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range row {
			ptrs[i] = &row[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("scan row of %s: %w", table, err)
		}
		// sqlite hands TEXT back as []byte through any-typed scans
		for i, v := range row {
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			}
		}
		values = append(values, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return columns, values, nil
}

func renderCell(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
