// Package cli provides the command-line interface for spannerudf.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/googleapis/spanner-sql-udf/internal/cli/commands"
	"github.com/googleapis/spanner-sql-udf/internal/cli/config"
	"github.com/googleapis/spanner-sql-udf/internal/cli/output"

	// Register the catalog entries and the lint rules.
	_ "github.com/googleapis/spanner-sql-udf/pkg/catalog/mysql"
	_ "github.com/googleapis/spanner-sql-udf/pkg/lint/rules"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spannerudf",
		Short: "MySQL compatibility functions for Cloud Spanner",
		Long: `spannerudf manages a catalog of MySQL built-in functions emulated as
Cloud Spanner user-defined functions.

It generates the installation DDL, validates the catalog, documents
each function's deviations from MySQL, and can deploy the functions
directly to a database.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

			ctx := commands.WithContext(cmd.Context(), &commands.CommandContext{
				Cfg:      cfg,
				Logger:   logger,
				Renderer: renderer,
			})
			cmd.SetContext(ctx)

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					logger.Debug("using config file", "path", configFile)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
MySQL compatibility functions for Cloud Spanner
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./spannerudf.yaml)")
	rootCmd.PersistentFlags().String("schema", "", "Schema the functions live in (default: mysql)")
	rootCmd.PersistentFlags().StringSlice("categories", nil, "Restrict to these categories")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Exclude these functions by name")
	rootCmd.PersistentFlags().String("database", "", "Database to deploy to (projects/*/instances/*/databases/*)")
	rootCmd.PersistentFlags().String("credentials", "", "Service account key file for deployment")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("categories", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"numeric", "datetime", "string", "encryption", "json", "misc"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewDropCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewDocsCommand())
	rootCmd.AddCommand(commands.NewApplyCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
