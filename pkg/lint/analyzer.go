package lint

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

// Analyzer runs registered rules over catalog entries. Entries are
// independent of each other, so they are checked concurrently.
type Analyzer struct {
	Logger *slog.Logger
	Rules  []RuleDef // defaults to the global registry
}

// NewAnalyzer returns an analyzer using the globally registered rules.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{Logger: logger, Rules: Rules()}
}

// Run checks every entry against every rule and returns the findings
// sorted by entry name then rule ID.
func (a *Analyzer) Run(ctx context.Context, entries []catalog.Entry) ([]Diagnostic, error) {
	var (
		mu    sync.Mutex
		diags []Diagnostic
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var found []Diagnostic
			for _, r := range a.Rules {
				for _, msg := range r.Check(e) {
					found = append(found, Diagnostic{
						RuleID:   r.ID,
						Severity: r.Severity,
						Entry:    e.Name,
						Message:  msg,
					})
				}
			}
			if len(found) > 0 {
				mu.Lock()
				diags = append(diags, found...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Entry != diags[j].Entry {
			return diags[i].Entry < diags[j].Entry
		}
		return diags[i].RuleID < diags[j].RuleID
	})
	a.Logger.Debug("lint complete", "entries", len(entries), "rules", len(a.Rules), "diagnostics", len(diags))
	return diags, nil
}

// Errors returns the subset of diagnostics at error severity.
func Errors(diags []Diagnostic) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}
