package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"exptable/internal/sigfile"
	"exptable/internal/sqlgen"
)

// DDLOptions holds flags for the ddl command.
type DDLOptions struct {
	*RootOptions
	SigPath string
}

// DDLResult holds the rendered statements for json output.
type DDLResult struct {
	Table         string   `json:"table"`
	CreateTable   string   `json:"create_table"`
	Insert        string   `json:"insert"`
	ArgColumns    []string `json:"arg_columns"`
	ReturnColumns []string `json:"return_columns"`
}

// NewDDLCommand creates the ddl command.
func NewDDLCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DDLOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ddl",
		Short: "Render the SQL derived from a signature declaration",
		Long: `Render the CREATE TABLE and INSERT statements derived from a
signature declaration file, without touching any database.

Examples:
  exptable ddl --sig div_rem.yaml
  exptable ddl --sig div_rem.yaml --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDDL(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SigPath, "sig", "", "path to signature declaration YAML (required)")
	_ = cmd.MarkFlagRequired("sig")

	return cmd
}

func runDDL(opts *DDLOptions, cmd *cobra.Command) error {
	table, sig, err := sigfile.Load(opts.SigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "load signature", err)
	}

	plan := sqlgen.BuildInsertPlan(table, sig)
	result := DDLResult{
		Table:         table,
		CreateTable:   sqlgen.CreateTable(table, sig),
		Insert:        plan.SQL,
		ArgColumns:    plan.ArgColumns,
		ReturnColumns: plan.ReturnColumns,
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return writeJSON(out, result)
	}

	fmt.Fprintln(out, result.CreateTable)
	fmt.Fprintln(out)
	fmt.Fprintln(out, result.Insert)
	return nil
}
