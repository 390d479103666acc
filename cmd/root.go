/*
Copyright © 2026 The pokedb Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iofs"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iologger"
	app "github.com/lucabelezal/pokedex-bff-sub000/pkg"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the base command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pokedb",
		Short:   "Seeds the Pokédex database from JSON snapshots",
		Long: `pokedb seeds the Pokédex database from a set of JSON snapshots.

Datasets are imported in dependency order: regions, types, egg groups,
generations, abilities, species, stats, evolution chains, Pokémon and
weaknesses. Each dataset gets an outcome line in the final report.

Commands:
  create: Create the database schema
  seed:   Import datasets into an empty database

Configuration precedence (highest to lowest):
  1. CLI flags (--parent, --jobs, etc.)
  2. Environment variables (POKEDB_*)
  3. Config file (~/.config/pokedb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host → POKEDB_DATABASE_HOST).

  Examples:
    POKEDB_DATABASE_DRIVER          postgres or sqlite
    POKEDB_DATABASE_HOST            PostgreSQL host
    POKEDB_IMPORT_PARENT            Directory or s3://bucket/prefix
    POKEDB_LOG_LEVEL                Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "pokedb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for pokedb")

	rootCmd.AddCommand(getCreateCmd(), getSeedCmd())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDatasetsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables are bound one by one, they match the fields of
	// config.ToOptions().
	v.SetEnvPrefix("POKEDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "POKEDB_DATABASE_DRIVER")
	v.BindEnv("database.host", "POKEDB_DATABASE_HOST")
	v.BindEnv("database.port", "POKEDB_DATABASE_PORT")
	v.BindEnv("database.user", "POKEDB_DATABASE_USER")
	v.BindEnv("database.password", "POKEDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "POKEDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "POKEDB_DATABASE_SSL_MODE")
	v.BindEnv("database.sqlite_path", "POKEDB_DATABASE_SQLITE_PATH")

	// Import configuration
	v.BindEnv("import.parent", "POKEDB_IMPORT_PARENT")
	v.BindEnv("import.s3_region", "POKEDB_IMPORT_S3_REGION")
	v.BindEnv("import.s3_endpoint", "POKEDB_IMPORT_S3_ENDPOINT")
	v.BindEnv("import.s3_path_style", "POKEDB_IMPORT_S3_PATH_STYLE")
	v.BindEnv("import.s3_access_key", "POKEDB_IMPORT_S3_ACCESS_KEY")
	v.BindEnv("import.s3_secret_key", "POKEDB_IMPORT_S3_SECRET_KEY")
	v.BindEnv("import.metrics_file", "POKEDB_IMPORT_METRICS_FILE")
	v.BindEnv("import.with_progress", "POKEDB_IMPORT_WITH_PROGRESS")

	// Log configuration
	v.BindEnv("log.level", "POKEDB_LOG_LEVEL")
	v.BindEnv("log.format", "POKEDB_LOG_FORMAT")
	v.BindEnv("log.destination", "POKEDB_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "POKEDB_JOBS_NUMBER")

	v.AutomaticEnv()
}
