package ioseed

import (
	"context"
	"errors"
	"strconv"

	"github.com/gnames/gnuuid"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"gorm.io/datatypes"
)

// pokemonIndices are the relations a Pokémon record refers to.
type pokemonIndices struct {
	stats       map[int64]*schema.Stats
	generations map[int64]*schema.Generation
	species     map[int64]*schema.Species
	chains      map[int64]*schema.EvolutionChain
	regions     map[int64]*schema.Region
	eggGroups   map[int64]*schema.EggGroup
	types       map[int64]*schema.Type
	abilities   map[int64]*schema.Ability
}

func importPokemon(ctx context.Context, t *task) (report.Outcome, error) {
	var idx pokemonIndices
	err := t.buildIndices(ctx,
		indexInto(&idx.stats, t.snk, statsID),
		indexInto(&idx.generations, t.snk, generationID),
		indexInto(&idx.species, t.snk, speciesID),
		indexInto(&idx.chains, t.snk, evolutionChainID),
		indexInto(&idx.regions, t.snk, regionID),
		indexInto(&idx.eggGroups, t.snk, eggGroupID),
		indexInto(&idx.types, t.snk, typeID),
		indexInto(&idx.abilities, t.snk, abilityID),
	)
	if err != nil {
		return report.Outcome{}, err
	}

	recs, err := iodataset.Load[dataset.PokemonRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}

	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.PokemonRecord) (bool, error) {
			p, err := idx.pokemon(r)
			if err != nil {
				return false, err
			}
			if _, err := t.save(ctx, p); err != nil {
				return false, err
			}
			if err := t.linkAbilities(ctx, p, r.Abilities, idx.abilities); err != nil {
				return false, err
			}
			return true, nil
		})
}

// pokemon builds the entity, every given reference has to resolve.
func (idx *pokemonIndices) pokemon(r dataset.PokemonRecord) (*schema.Pokemon, error) {
	stats, ok := idx.stats[r.StatsID]
	if !ok {
		return nil, MissingDependencyError("stats", r.StatsID)
	}
	gen, ok := idx.generations[r.GenerationID]
	if !ok {
		return nil, MissingDependencyError("generation", r.GenerationID)
	}
	species, ok := idx.species[r.SpeciesID]
	if !ok {
		return nil, MissingDependencyError("species", r.SpeciesID)
	}
	chain, ok := idx.chains[r.EvolutionChainID]
	if !ok {
		return nil, MissingDependencyError("evolution chain", r.EvolutionChainID)
	}

	res := &schema.Pokemon{
		ID:               r.ID,
		Number:           r.Number,
		Name:             r.Name,
		Description:      r.Description,
		Height:           r.Height,
		Weight:           r.Weight,
		GenderRateValue:  r.GenderRateValue,
		EggCycles:        r.EggCycles,
		StatsID:          stats.ID,
		Stats:            *stats,
		GenerationID:     gen.ID,
		Generation:       *gen,
		SpeciesID:        species.ID,
		Species:          *species,
		EvolutionChainID: chain.ID,
		EvolutionChain:   *chain,
	}

	if r.RegionID != nil {
		region, ok := idx.regions[*r.RegionID]
		if !ok {
			return nil, MissingDependencyError("region", *r.RegionID)
		}
		res.RegionID = &region.ID
		res.Region = region
	}

	if r.Gender != nil {
		male, female := r.Gender.Male, r.Gender.Female
		res.GenderMale = &male
		res.GenderFemale = &female
	}

	if r.Sprites != nil {
		res.Sprites = datatypes.NewJSONType(*r.Sprites)
	}

	// egg groups and types are sets, repeated ids are kept once
	seen := make(map[int64]struct{})
	for _, id := range r.EggGroupIDs {
		eg, ok := idx.eggGroups[id]
		if !ok {
			return nil, MissingDependencyError("egg group", id)
		}
		if _, ok = seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res.EggGroups = append(res.EggGroups, *eg)
	}

	clear(seen)
	for _, id := range r.TypeIDs {
		typ, ok := idx.types[id]
		if !ok {
			return nil, MissingDependencyError("type", id)
		}
		if _, ok = seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res.Types = append(res.Types, *typ)
	}

	return res, nil
}

// linkAbilities saves a PokemonAbility for every ability of the record.
// Failed links do not stop the others, all failures are returned. In an
// atomic dataset the first failed write ends the loop.
func (t *task) linkAbilities(
	ctx context.Context,
	p *schema.Pokemon,
	recs []dataset.PokemonAbilityRecord,
	abilities map[int64]*schema.Ability,
) error {
	var errs []error
	for _, ar := range recs {
		ab, ok := abilities[ar.AbilityID]
		if !ok {
			errs = append(errs, MissingDependencyError("ability", ar.AbilityID))
			continue
		}

		link := &schema.PokemonAbility{
			ID:        linkID(p.ID, ab.ID),
			PokemonID: p.ID,
			AbilityID: ab.ID,
			Ability:   *ab,
			IsHidden:  ar.IsHidden,
		}
		if _, err := t.save(ctx, link); err != nil {
			errs = append(errs, err)
			if t.atomic {
				break
			}
		}
	}
	return errors.Join(errs...)
}

// linkID is a name-based UUID of the Pokémon and ability pair.
func linkID(pokemonID, abilityID int64) string {
	key := "pokemon_ability|" + strconv.FormatInt(pokemonID, 10) +
		"|" + strconv.FormatInt(abilityID, 10)
	return gnuuid.New(key).String()
}
