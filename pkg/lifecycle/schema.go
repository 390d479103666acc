package lifecycle

import (
	"context"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
)

// SchemaManager creates the relational schema of the Pokédex store.
// It uses GORM AutoMigrate, so running it twice is safe.
type SchemaManager interface {
	// Create creates all tables of the schema.
	Create(ctx context.Context, cfg *config.Config) error
}
