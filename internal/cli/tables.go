package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"exptable/internal/store"
)

// TablesOptions holds flags for the tables command.
type TablesOptions struct {
	*RootOptions
	Database string
}

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TablesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List recorded tables in a database",
		Long: `List the tables present in a recording database, in name order.

Examples:
  exptable tables --db ./experiments.db
  exptable tables --db ./experiments.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTables(opts *TablesOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "open database", err)
	}
	defer st.Close()

	names, err := st.TableNames(context.Background())
	if err != nil {
		return WrapExitError(ExitFailure, "list tables", err)
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, names)
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
