package config

import (
	"path/filepath"
	"strings"
)

var (
	// AppName is used in generating file system paths.
	AppName = "pokedb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/pokedb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/pokedb by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/pokedb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/pokedb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatasetsFilePath returns the full path to the dataset manifest.
// Returns ~/.config/pokedb/datasets.yaml by default.
func DatasetsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "datasets.yaml")
}

// SQLiteFilePath resolves Database.SQLitePath. Relative paths are placed
// into the cache directory.
func (c *Config) SQLiteFilePath() string {
	p := c.Database.SQLitePath
	if filepath.IsAbs(p) || c.HomeDir == "" {
		return p
	}
	return filepath.Join(CacheDir(c.HomeDir), p)
}

// IsS3Parent reports whether Import.Parent points to an S3 bucket.
func (c *Config) IsS3Parent() bool {
	return strings.HasPrefix(c.Import.Parent, "s3://")
}
