// Package iotesting provides shared test utilities for unit and
// integration tests. This is an internal package for test infrastructure
// only.
package iotesting

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "pokedex_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies POKEDB_DATABASE_* environment variables
// and overrides the database name to TestDatabaseName for safety.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("POKEDB_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("POKEDB_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	user := os.Getenv("POKEDB_DATABASE_USER")
	if user == "" {
		user = "postgres"
	}
	opts = append(opts, config.OptDatabaseUser(user))
	pass := os.Getenv("POKEDB_DATABASE_PASSWORD")
	if pass == "" {
		pass = "postgres"
	}
	opts = append(opts,
		config.OptDatabasePassword(pass),
		config.OptImportWithProgress(false),
		config.OptJobsNumber(2),
	)
	cfg.Update(opts)

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the database configuration for tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// WriteDataset writes a JSON dataset file into dir and returns its path.
func WriteDataset(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write dataset %s: %v", name, err)
	}
	return path
}
