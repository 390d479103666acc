package ioseed

import (
	"context"
	"log/slog"
	"strings"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

// importWeaknesses adds weakness types to already imported Pokémon. Both
// sides are matched by exact name. A Pokémon is saved only when its
// weakness set grows.
func importWeaknesses(ctx context.Context, t *task) (report.Outcome, error) {
	var pokemons map[string]*schema.Pokemon
	var types map[string]*schema.Type
	err := t.buildIndices(ctx,
		indexInto(&pokemons, t.snk, pokemonName),
		indexInto(&types, t.snk, typeName),
	)
	if err != nil {
		return report.Outcome{}, err
	}

	recs, err := iodataset.Load[dataset.WeaknessRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}

	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.WeaknessRecord) (bool, error) {
			p, ok := pokemons[r.PokemonName]
			if !ok {
				return false, MissingDependencyError("pokemon", r.PokemonName)
			}
			if len(r.Weaknesses) == 0 {
				return false, nil
			}

			var resolved int
			before := len(p.Weaknesses)
			for _, name := range r.Weaknesses {
				typ, ok := types[name]
				if !ok {
					slog.Warn("Unknown weakness type, skipping",
						"run_id", t.runID,
						"pokemon", p.Name,
						"type", name,
					)
					continue
				}
				resolved++
				if p.HasWeakness(typ.ID) {
					continue
				}
				p.Weaknesses = append(p.Weaknesses, *typ)
			}

			if resolved == 0 {
				return false, MissingDependencyError("type",
					strings.Join(r.Weaknesses, ", "))
			}
			if len(p.Weaknesses) == before {
				return false, nil
			}
			written, err := t.save(ctx, p)
			if err != nil {
				p.Weaknesses = p.Weaknesses[:before]
			}
			return written, err
		})
}
