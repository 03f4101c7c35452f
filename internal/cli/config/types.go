// Package config provides configuration management for the spannerudf
// CLI. Values merge from defaults, an optional spannerudf.yaml file,
// SPANNERUDF_-prefixed environment variables, and command-line flags,
// highest last.
package config

// Config holds the resolved CLI configuration.
type Config struct {
	// Schema is the named schema the emulation functions live in.
	Schema string `koanf:"schema"`

	// Categories restricts generation and deployment to the named
	// categories. Empty means all.
	Categories []string `koanf:"categories"`

	// Exclude removes individual functions by name.
	Exclude []string `koanf:"exclude"`

	// Database is the fully qualified database to deploy to, in
	// projects/*/instances/*/databases/* form.
	Database string `koanf:"database"`

	// Credentials is an optional service-account key file used by the
	// deploy command.
	Credentials string `koanf:"credentials"`

	// OutputFormat selects auto, text, or json rendering.
	OutputFormat string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultSchema = "mysql"
	DefaultOutput = "auto"
)
