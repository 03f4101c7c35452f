package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/pkg/ddl"
)

// NewDropCommand creates the drop command.
func NewDropCommand() *cobra.Command {
	var withSchema bool

	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Render the removal SQL script",
		Long: `Render DROP FUNCTION statements for the selected catalog entries, and
optionally the DROP SCHEMA statement once the schema is empty.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromCommand(cmd)
			entries := SelectEntries(cc.Cfg)
			if len(entries) == 0 {
				return fmt.Errorf("no functions selected")
			}

			for _, stmt := range ddl.DropStatements(cc.Cfg.Schema, entries, withSchema) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s;\n", stmt); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withSchema, "with-schema", false, "Also drop the schema itself")
	return cmd
}
