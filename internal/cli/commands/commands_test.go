package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/internal/cli/config"
	"github.com/googleapis/spanner-sql-udf/internal/cli/output"

	// Populate the catalog and the lint rules the commands operate on.
	_ "github.com/googleapis/spanner-sql-udf/pkg/catalog/mysql"
	_ "github.com/googleapis/spanner-sql-udf/pkg/lint/rules"
)

// testConfig returns a config equivalent to the defaults.
func testConfig() *config.Config {
	return &config.Config{
		Schema:       config.DefaultSchema,
		OutputFormat: config.DefaultOutput,
	}
}

// execute runs a command with the given config wired into its context
// and returns the combined output.
func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	cc := &CommandContext{
		Cfg:      cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Renderer: output.NewRenderer(buf, buf, output.Mode(cfg.OutputFormat)),
	}
	err := cmd.ExecuteContext(WithContext(context.Background(), cc))
	return buf.String(), err
}

func TestSelectEntries(t *testing.T) {
	cfg := testConfig()
	all := SelectEntries(cfg)
	if len(all) == 0 {
		t.Fatal("expected a populated catalog")
	}

	cfg.Categories = []string{"numeric"}
	numeric := SelectEntries(cfg)
	if len(numeric) == 0 || len(numeric) >= len(all) {
		t.Errorf("numeric filter returned %d of %d entries", len(numeric), len(all))
	}
	for _, e := range numeric {
		if e.Category != "numeric" {
			t.Errorf("entry %s has category %s", e.Name, e.Category)
		}
	}

	cfg.Exclude = []string{numeric[0].Name}
	excluded := SelectEntries(cfg)
	if len(excluded) != len(numeric)-1 {
		t.Errorf("exclusion of one entry returned %d of %d", len(excluded), len(numeric))
	}
	for _, e := range excluded {
		if e.Name == cfg.Exclude[0] {
			t.Errorf("entry %s should have been excluded", e.Name)
		}
	}
}

func TestFromCommandFallback(t *testing.T) {
	cmd := &cobra.Command{Use: "probe"}
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetContext(context.Background())

	cc := FromCommand(cmd)
	if cc.Cfg.Schema != config.DefaultSchema {
		t.Errorf("fallback schema = %q, want %q", cc.Cfg.Schema, config.DefaultSchema)
	}
	if cc.Logger == nil || cc.Renderer == nil {
		t.Error("fallback context should be fully populated")
	}
}
