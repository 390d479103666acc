// Package sink defines the persistence target the seeder writes to and
// reads relation indices from.
package sink

import (
	"context"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

// Sink is a store of Pokédex entities. Implementations must make saved
// entities visible to subsequent FindAll calls of the same run.
type Sink interface {
	// FindAll loads every stored entity of a kind into dest, which must be
	// a pointer to a slice of a schema model, e.g. *[]schema.Region.
	// Related entities are loaded together with the owner.
	FindAll(ctx context.Context, dest any) error

	// Save inserts or replaces an entity (a pointer to a schema model).
	Save(ctx context.Context, entity schema.Entity) error

	// Count returns the number of stored entities of the model's kind.
	Count(ctx context.Context, model schema.Entity) (int64, error)

	// Transaction runs fn with a Sink whose writes are committed only if
	// fn returns nil.
	Transaction(ctx context.Context, fn func(tx Sink) error) error

	// Close releases resources of the Sink.
	Close() error
}
