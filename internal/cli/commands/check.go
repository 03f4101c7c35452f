package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/pkg/lint"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the catalog",
		Long: `Run every validation rule over the selected entries: identifier and
type legality, collisions with native functions, body well-formedness,
and documentation of each entry's error policy.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromCommand(cmd)
			entries := SelectEntries(cc.Cfg)

			analyzer := lint.NewAnalyzer(cc.Logger)
			diags, err := analyzer.Run(cmd.Context(), entries)
			if err != nil {
				return err
			}

			if cc.Renderer.JSONMode() {
				type row struct {
					Rule     string `json:"rule"`
					Severity string `json:"severity"`
					Entry    string `json:"entry"`
					Message  string `json:"message"`
				}
				rows := make([]row, 0, len(diags))
				for _, d := range diags {
					rows = append(rows, row{d.RuleID, d.Severity.String(), d.Entry, d.Message})
				}
				if err := cc.Renderer.JSON(rows); err != nil {
					return err
				}
			} else if len(diags) > 0 {
				rows := make([][]string, 0, len(diags))
				for _, d := range diags {
					rows = append(rows, []string{d.Severity.String(), d.Entry, d.RuleID, d.Message})
				}
				cc.Renderer.Table([]string{"Severity", "Function", "Rule", "Message"}, rows)
			}

			if errs := lint.Errors(diags); len(errs) > 0 {
				return fmt.Errorf("%d problems found in %d functions checked", len(errs), len(entries))
			}
			if !cc.Renderer.JSONMode() {
				cc.Renderer.Textf("%d functions checked, no problems found\n", len(entries))
			}
			return nil
		},
	}
}
