package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

// NewDocsCommand creates the docs command.
func NewDocsCommand() *cobra.Command {
	var (
		format  string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Export the catalog reference",
		Long: `Export a reference document for the selected catalog entries, listing
each function's signature, description, and known deviations from MySQL
behavior.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc := FromCommand(cmd)
			entries := SelectEntries(cc.Cfg)
			if len(entries) == 0 {
				return fmt.Errorf("no functions selected")
			}

			var (
				doc string
				err error
			)
			switch format {
			case "markdown":
				doc = renderMarkdown(cc.Cfg.Schema, entries)
			case "yaml":
				doc, err = renderYAML(entries)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown docs format %q (expected markdown or yaml)", format)
			}

			if outFile == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
				return err
			}
			if err := os.WriteFile(outFile, []byte(doc), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outFile, err)
			}
			cc.Logger.Info("docs written", "path", outFile, "functions", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "markdown", "Documentation format (markdown or yaml)")
	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write the document to this file instead of stdout")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		[]string{"markdown", "yaml"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func renderMarkdown(schema string, entries []catalog.Entry) string {
	rank := make(map[catalog.Category]int, len(catalog.Categories()))
	for i, c := range catalog.Categories() {
		rank[c] = i
	}
	sorted := make([]catalog.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Category != sorted[j].Category {
			return rank[sorted[i].Category] < rank[sorted[j].Category]
		}
		return sorted[i].Name < sorted[j].Name
	})

	var b strings.Builder
	b.WriteString("# MySQL compatibility functions\n\n")
	fmt.Fprintf(&b, "Functions are installed under the `%s` schema.\n", schema)

	var current catalog.Category
	for _, e := range sorted {
		if e.Category != current {
			current = e.Category
			fmt.Fprintf(&b, "\n## %s\n", strings.ToUpper(string(current)[:1])+string(current)[1:])
		}
		fmt.Fprintf(&b, "\n### %s.%s\n\n", schema, e.Signature())
		fmt.Fprintf(&b, "Returns `%s`. %s\n", e.Returns, e.Doc)
		if e.ErrorPolicy == catalog.PolicyNull {
			b.WriteString("Returns NULL on invalid input instead of raising an error.\n")
		}
		for _, d := range e.Deviations {
			fmt.Fprintf(&b, "\n> Deviation: %s\n", d)
		}
	}
	return b.String()
}

type docEntry struct {
	Name       string   `yaml:"name"`
	Category   string   `yaml:"category"`
	Signature  string   `yaml:"signature"`
	Returns    string   `yaml:"returns"`
	Doc        string   `yaml:"doc,omitempty"`
	Policy     string   `yaml:"error_policy"`
	Deviations []string `yaml:"deviations,omitempty"`
}

func renderYAML(entries []catalog.Entry) (string, error) {
	out := make([]docEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, docEntry{
			Name:       e.Name,
			Category:   string(e.Category),
			Signature:  e.Signature(),
			Returns:    e.Returns,
			Doc:        e.Doc,
			Policy:     e.ErrorPolicy.String(),
			Deviations: e.Deviations,
		})
	}
	raw, err := yaml.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("failed to marshal docs: %w", err)
	}
	return string(raw), nil
}
