package ioseed

import (
	"context"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
)

// buildIndex loads every stored entity of kind E and keys it with key.
// When keys repeat, the entity stored last wins.
func buildIndex[K comparable, E schema.Entity](
	ctx context.Context,
	snk sink.Sink,
	key func(*E) K,
) (map[K]*E, error) {
	var items []E
	if err := snk.FindAll(ctx, &items); err != nil {
		var zero E
		return nil, SinkReadError(zero.TableName(), err)
	}

	res := make(map[K]*E, len(items))
	for i := range items {
		res[key(&items[i])] = &items[i]
	}
	return res, nil
}

// indexInto returns an index builder that stores its result in dst.
func indexInto[K comparable, E schema.Entity](
	dst *map[K]*E,
	snk sink.Sink,
	key func(*E) K,
) func(context.Context) error {
	return func(ctx context.Context) error {
		idx, err := buildIndex(ctx, snk, key)
		if err != nil {
			return err
		}
		*dst = idx
		return nil
	}
}

func regionID(e *schema.Region) int64                 { return e.ID }
func typeID(e *schema.Type) int64                     { return e.ID }
func typeName(e *schema.Type) string                  { return e.Name }
func eggGroupID(e *schema.EggGroup) int64             { return e.ID }
func generationID(e *schema.Generation) int64         { return e.ID }
func abilityID(e *schema.Ability) int64               { return e.ID }
func speciesID(e *schema.Species) int64               { return e.ID }
func statsID(e *schema.Stats) int64                   { return e.ID }
func evolutionChainID(e *schema.EvolutionChain) int64 { return e.ID }
func pokemonName(e *schema.Pokemon) string            { return e.Name }
