// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodb"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/db"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/lifecycle"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the database schema using GORM AutoMigrate.
// Also applies "C" collation on name columns that are used as
// lookup keys, so that name resolution is byte-exact.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := iodb.GORM(m.operator)
	if err != nil {
		return err
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	return m.setCollation(ctx)
}

// setCollation sets "C" collation on varchar columns that
// are matched by name during import.
func (m *manager) setCollation(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return iodb.NotConnectedError()
	}

	for _, col := range collatedColumns {
		q := formatCollationSQL(col)
		if _, err := pool.Exec(ctx, q); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}
