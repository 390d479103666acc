// Package config provides configuration management for pokedb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     sqlite_path
//   - Import: parent, s3_region, s3_endpoint, s3_path_style,
//     s3_access_key, s3_secret_key, metrics_file, with_progress
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Import.Force (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use POKEDB_ prefix with underscores for nesting:
//
//	POKEDB_DATABASE_HOST=localhost
//	POKEDB_DATABASE_DRIVER=sqlite
//	POKEDB_IMPORT_PARENT=s3://pokedex/data
//	POKEDB_LOG_LEVEL=info
//	POKEDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete pokedb configuration.
type Config struct {
	// Database contains settings of the store that receives seeded data.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings specific to the seed command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber limits how many relation indices are loaded concurrently.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains connection parameters of the seeded store.
type DatabaseConfig struct {
	// Driver selects the store: "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// SQLitePath is the snapshot file used when Driver is "sqlite".
	// A relative path is resolved against the cache directory.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// ImportConfig contains settings of the seed command.
type ImportConfig struct {
	// Parent is the location of dataset JSON files. It is either a local
	// directory or an S3 URL of the form s3://bucket/prefix.
	Parent string `mapstructure:"parent" yaml:"parent"`

	// S3Region is the AWS region used when Parent is an S3 URL.
	S3Region string `mapstructure:"s3_region" yaml:"s3_region"`

	// S3Endpoint overrides the S3 endpoint (MinIO, LocalStack).
	S3Endpoint string `mapstructure:"s3_endpoint" yaml:"s3_endpoint"`

	// S3PathStyle forces path-style addressing of buckets.
	S3PathStyle bool `mapstructure:"s3_path_style" yaml:"s3_path_style"`

	// S3AccessKey and S3SecretKey are static credentials. When empty the
	// default AWS credential chain is used.
	S3AccessKey string `mapstructure:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key" yaml:"s3_secret_key"`

	// MetricsFile, when set, receives Prometheus text-format metrics of the
	// last seed run.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	// WithProgress shows progress bars for long record loops.
	WithProgress bool `mapstructure:"with_progress" yaml:"with_progress"`

	// Force skips the empty-store guard. Runtime-only.
	Force bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:     "postgres",
			Host:       "localhost",
			Port:       5432,
			User:       "postgres",
			Password:   "postgres",
			Database:   "pokedex",
			SSLMode:    "disable",
			SQLitePath: "pokedex.sqlite",
		},
		Import: ImportConfig{
			Parent:       "data",
			S3Region:     "us-east-1",
			WithProgress: true,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
