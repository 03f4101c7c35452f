// Package commands implements the spannerudf subcommands.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/internal/cli/config"
	"github.com/googleapis/spanner-sql-udf/internal/cli/output"
	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// ctxKey is used to store the CommandContext in the command context.
type ctxKey struct{}

// WithContext stores a CommandContext in ctx.
func WithContext(ctx context.Context, cc *CommandContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, cc)
}

// FromCommand retrieves the CommandContext, falling back to defaults
// when the root command's setup did not run (direct command tests).
func FromCommand(cmd *cobra.Command) *CommandContext {
	if cc, ok := cmd.Context().Value(ctxKey{}).(*CommandContext); ok {
		return cc
	}
	cfg := &config.Config{Schema: config.DefaultSchema, OutputFormat: config.DefaultOutput}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat)),
	}
}

// SelectEntries applies the configured category and exclusion filters
// to the full catalog.
func SelectEntries(cfg *config.Config) []catalog.Entry {
	wantCat := make(map[catalog.Category]bool, len(cfg.Categories))
	for _, c := range cfg.Categories {
		wantCat[catalog.Category(c)] = true
	}
	excluded := make(map[string]bool, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		excluded[name] = true
	}

	var out []catalog.Entry
	for _, e := range catalog.All() {
		if len(wantCat) > 0 && !wantCat[e.Category] {
			continue
		}
		if excluded[e.Name] {
			continue
		}
		out = append(out, e)
	}
	return out
}
