package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/internal/admin"
	"github.com/googleapis/spanner-sql-udf/pkg/ddl"
)

// NewApplyCommand creates the apply command.
func NewApplyCommand() *cobra.Command {
	var (
		dryRun     bool
		skipSchema bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Install the functions into a database",
		Long: `Apply the CREATE statements for the selected catalog entries to a
Cloud Spanner database through the database admin API. The target
database comes from --database or the config file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromCommand(cmd)
			if cc.Cfg.Database == "" {
				return fmt.Errorf("no database configured (set --database or the database config key)")
			}
			entries := SelectEntries(cc.Cfg)
			if len(entries) == 0 {
				return fmt.Errorf("no functions selected")
			}

			stmts := ddl.Statements(cc.Cfg.Schema, entries, ddl.ScriptOptions{SkipSchema: skipSchema})
			if dryRun {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(stmts, ";\n")+";")
				return err
			}

			applier, err := admin.NewApplier(cmd.Context(), cc.Cfg.Credentials, cc.Logger)
			if err != nil {
				return err
			}
			defer applier.Close()

			if err := applier.Apply(cmd.Context(), cc.Cfg.Database, stmts); err != nil {
				return err
			}
			cc.Renderer.Textf("applied %d statements to %s\n", len(stmts), cc.Cfg.Database)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statements without applying them")
	cmd.Flags().BoolVar(&skipSchema, "skip-schema", false, "Omit the CREATE SCHEMA statement")
	return cmd
}
