package ioseed

import (
	"context"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

func importGenerations(ctx context.Context, t *task) (report.Outcome, error) {
	var regions map[int64]*schema.Region
	err := t.buildIndices(ctx, indexInto(&regions, t.snk, regionID))
	if err != nil {
		return report.Outcome{}, err
	}

	recs, err := iodataset.Load[dataset.GenerationRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}

	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.GenerationRecord) (bool, error) {
			region, ok := regions[r.RegionID]
			if !ok {
				return false, MissingDependencyError("region", r.RegionID)
			}
			return t.save(ctx, &schema.Generation{
				ID:       r.ID,
				Name:     r.Name,
				RegionID: region.ID,
				Region:   *region,
			})
		})
}

func importAbilities(ctx context.Context, t *task) (report.Outcome, error) {
	var generations map[int64]*schema.Generation
	err := t.buildIndices(ctx, indexInto(&generations, t.snk, generationID))
	if err != nil {
		return report.Outcome{}, err
	}

	recs, err := iodataset.Load[dataset.AbilityRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}

	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.AbilityRecord) (bool, error) {
			gen, ok := generations[r.IntroducedGenerationID]
			if !ok {
				return false, MissingDependencyError("generation",
					r.IntroducedGenerationID)
			}
			return t.save(ctx, &schema.Ability{
				ID:                     r.ID,
				Name:                   r.Name,
				Description:            r.Description,
				IntroducedGenerationID: gen.ID,
				IntroducedGeneration:   *gen,
			})
		})
}
