package lifecycle

import (
	"context"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
)

// Guard decides whether seeding may start. It is evaluated once, before
// any dataset is touched.
type Guard func(ctx context.Context) (bool, error)

// Seeder imports all datasets into a store.
type Seeder interface {
	// RunIfEmpty seeds the store when guard allows it. It returns a nil
	// report when the guard declined.
	RunIfEmpty(ctx context.Context, guard Guard) (*report.Report, error)

	// Seed imports all datasets in dependency order and returns the
	// report of the run.
	Seed(ctx context.Context) (*report.Report, error)
}
