package config

import (
	"fmt"
	"regexp"

	"github.com/googleapis/spanner-sql-udf/internal/cli/output"
	"github.com/googleapis/spanner-sql-udf/pkg/catalog"
	"github.com/googleapis/spanner-sql-udf/pkg/spanner"
)

// databaseRE matches fully qualified Cloud Spanner database names.
var databaseRE = regexp.MustCompile(`^projects/[^/]+/instances/[^/]+/databases/[^/]+$`)

// Validate checks a loaded configuration for values that would only
// fail later with a worse message.
func Validate(cfg *Config) error {
	if !spanner.IsIdentifier(cfg.Schema) {
		return fmt.Errorf("invalid schema name %q", cfg.Schema)
	}
	if !output.ValidMode(output.Mode(cfg.OutputFormat)) {
		return fmt.Errorf("invalid output format %q (want auto, text, or json)", cfg.OutputFormat)
	}
	for _, c := range cfg.Categories {
		if !catalog.ValidCategory(catalog.Category(c)) {
			return fmt.Errorf("unknown category %q", c)
		}
	}
	if cfg.Database != "" && !databaseRE.MatchString(cfg.Database) {
		return fmt.Errorf("invalid database %q (want projects/*/instances/*/databases/*)", cfg.Database)
	}
	return nil
}
