package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
)

// Operator defines the interface for basic PostgreSQL management
// operations. It owns the connection pool; higher level components (schema
// manager, GORM sink) build on top of Pool().
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error
}
