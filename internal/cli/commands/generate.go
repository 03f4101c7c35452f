package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/pkg/ddl"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var (
		outFile    string
		skipSchema bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the installation SQL script",
		Long: `Render the CREATE SCHEMA and CREATE OR REPLACE FUNCTION statements for
the selected catalog entries, to stdout or a file.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromCommand(cmd)
			entries := SelectEntries(cc.Cfg)
			if len(entries) == 0 {
				return fmt.Errorf("no functions selected")
			}

			script := ddl.Script(cc.Cfg.Schema, entries, ddl.ScriptOptions{SkipSchema: skipSchema})

			if outFile == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), script)
				return err
			}
			if err := os.WriteFile(outFile, []byte(script), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			cc.Logger.Info("script written", "path", outFile, "functions", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write the script to this file instead of stdout")
	cmd.Flags().BoolVar(&skipSchema, "skip-schema", false, "Omit the CREATE SCHEMA statement")
	return cmd
}
