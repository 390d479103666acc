package ioseed

import (
	"context"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

// importer imports one dataset. The error is either SourceUnavailable
// for the dataset or a failure that stops the run.
type importer func(context.Context, *task) (report.Outcome, error)

func importerFor(k dataset.Kind) importer {
	switch k {
	case dataset.Region:
		return importRegions
	case dataset.Type:
		return importTypes
	case dataset.EggGroup:
		return importEggGroups
	case dataset.Generation:
		return importGenerations
	case dataset.Ability:
		return importAbilities
	case dataset.Species:
		return importSpecies
	case dataset.Stats:
		return importStats
	case dataset.EvolutionChain:
		return importEvolutionChains
	case dataset.Pokemon:
		return importPokemon
	case dataset.Weakness:
		return importWeaknesses
	default:
		return nil
	}
}

func importRegions(ctx context.Context, t *task) (report.Outcome, error) {
	recs, err := iodataset.Load[dataset.RegionRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}
	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.RegionRecord) (bool, error) {
			return t.save(ctx, &schema.Region{ID: r.ID, Name: r.Name})
		})
}

func importTypes(ctx context.Context, t *task) (report.Outcome, error) {
	recs, err := iodataset.Load[dataset.TypeRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}
	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.TypeRecord) (bool, error) {
			return t.save(ctx, &schema.Type{ID: r.ID, Name: r.Name, Color: r.Color})
		})
}

func importEggGroups(ctx context.Context, t *task) (report.Outcome, error) {
	recs, err := iodataset.Load[dataset.EggGroupRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}
	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.EggGroupRecord) (bool, error) {
			return t.save(ctx, &schema.EggGroup{ID: r.ID, Name: r.Name})
		})
}

func importSpecies(ctx context.Context, t *task) (report.Outcome, error) {
	recs, err := iodataset.Load[dataset.SpeciesRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}
	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.SpeciesRecord) (bool, error) {
			return t.save(ctx, &schema.Species{
				ID:            r.ID,
				PokedexNumber: r.PokemonNumber,
				Name:          r.Name,
				SpeciesEn:     r.SpeciesEn,
				SpeciesPt:     r.SpeciesPt,
			})
		})
}

func importStats(ctx context.Context, t *task) (report.Outcome, error) {
	recs, err := iodataset.Load[dataset.StatsRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}
	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.StatsRecord) (bool, error) {
			return t.save(ctx, &schema.Stats{
				ID:      r.ID,
				Total:   r.Total,
				HP:      r.HP,
				Attack:  r.Attack,
				Defense: r.Defense,
				SpAtk:   r.SpAtk,
				SpDef:   r.SpDef,
				Speed:   r.Speed,
			})
		})
}
