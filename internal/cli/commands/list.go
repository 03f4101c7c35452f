package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog entries",
		Long:  `List the selected catalog entries with their signatures and error policies.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromCommand(cmd)
			entries := SelectEntries(cc.Cfg)

			if cc.Renderer.JSONMode() {
				type row struct {
					Name       string   `json:"name"`
					Category   string   `json:"category"`
					Signature  string   `json:"signature"`
					Returns    string   `json:"returns"`
					Policy     string   `json:"error_policy"`
					Deviations []string `json:"deviations,omitempty"`
				}
				rows := make([]row, 0, len(entries))
				for _, e := range entries {
					rows = append(rows, row{
						Name:       e.Name,
						Category:   string(e.Category),
						Signature:  e.Signature(),
						Returns:    e.Returns,
						Policy:     e.ErrorPolicy.String(),
						Deviations: e.Deviations,
					})
				}
				return cc.Renderer.JSON(rows)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.Signature(),
					string(e.Category),
					e.Returns,
					e.ErrorPolicy.String(),
					fmt.Sprintf("%d", len(e.Deviations)),
				})
			}
			cc.Renderer.Table([]string{"Function", "Category", "Returns", "Policy", "Deviations"}, rows)
			cc.Renderer.Textf("(%d functions)\n", len(entries))
			return nil
		},
	}
}
