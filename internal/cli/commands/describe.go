package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
	"github.com/googleapis/spanner-sql-udf/pkg/ddl"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <function>",
		Short: "Show one entry in full",
		Long:  `Show an entry's signature, documentation, deviations, and rendered DDL.`,
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return catalog.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := FromCommand(cmd)
			e, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown function: %s", args[0])
			}

			if cc.Renderer.JSONMode() {
				return cc.Renderer.JSON(map[string]any{
					"name":         e.Name,
					"category":     string(e.Category),
					"signature":    e.Signature(),
					"returns":      e.Returns,
					"error_policy": e.ErrorPolicy.String(),
					"doc":          e.Doc,
					"deviations":   e.Deviations,
					"ddl":          ddl.CreateFunction(cc.Cfg.Schema, e),
				})
			}

			cc.Renderer.Textf("%s -> %s  [%s, policy=%s]\n", e.Signature(), e.Returns, e.Category, e.ErrorPolicy)
			if e.Doc != "" {
				cc.Renderer.Textf("\n%s\n", e.Doc)
			}
			if len(e.Deviations) > 0 {
				cc.Renderer.Textf("\nDeviations from MySQL:\n")
				for _, d := range e.Deviations {
					cc.Renderer.Textf("  - %s\n", d)
				}
			}
			cc.Renderer.Textf("\n%s;\n", ddl.CreateFunction(cc.Cfg.Schema, e))
			return nil
		},
	}
}
