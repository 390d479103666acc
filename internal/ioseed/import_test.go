package ioseed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/ioseed"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iotesting"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/evolution"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedFiles writes the given datasets to a temporary directory and runs
// a seeder over it. Datasets without a file are reported unavailable.
func seedFiles(
	t *testing.T,
	snk *iotesting.MemSink,
	files map[dataset.Kind]string,
	descs ...dataset.Descriptor,
) *report.Report {
	t.Helper()
	dir := t.TempDir()
	for k, content := range files {
		iotesting.WriteDataset(t, dir, k.DefaultFile(), content)
	}
	for i := range descs {
		if descs[i].File == "" {
			descs[i].File = descs[i].Kind.DefaultFile()
		}
	}

	rep, err := newSeeder(testConfig(dir), snk, descs...).
		RunIfEmpty(context.Background(), ioseed.ForceGuard())
	require.NoError(t, err)
	require.NotNil(t, rep)
	return rep
}

func outcome(t *testing.T, rep *report.Report, k dataset.Kind) (int, int) {
	t.Helper()
	e := entry(t, rep, k)
	return e.Success, e.Errors
}

func TestGenerationReferencesRegion(t *testing.T) {
	snk := iotesting.NewMemSink()
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Region:     `[{"id":1,"name":"Kanto"}]`,
		dataset.Generation: `[{"id":1,"name":"Generation I","region_id":1}]`,
	})

	s, e := outcome(t, rep, dataset.Region)
	assert.Equal(t, [2]int{1, 0}, [2]int{s, e})
	s, e = outcome(t, rep, dataset.Generation)
	assert.Equal(t, [2]int{1, 0}, [2]int{s, e})

	var gen schema.Generation
	require.True(t, snk.Get(&gen, "1"))
	assert.Equal(t, int64(1), gen.Region.ID)
	assert.Equal(t, "Kanto", gen.Region.Name)
}

func TestGenerationMissingRegion(t *testing.T) {
	snk := iotesting.NewMemSink()
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Generation: `[{"id":1,"name":"Generation I","region_id":99}]`,
	})

	s, e := outcome(t, rep, dataset.Generation)
	assert.Equal(t, [2]int{0, 1}, [2]int{s, e})
	assert.Equal(t, "FAILED", entry(t, rep, dataset.Generation).Status())
	assert.Zero(t, snk.Saves(&schema.Generation{}))
}

func TestPartialFailureIsolation(t *testing.T) {
	snk := iotesting.NewMemSink()
	snk.SaveErr = func(e schema.Entity) error {
		if typ, ok := e.(*schema.Type); ok && typ.Name == "Bird" {
			return errors.New("value too long")
		}
		return nil
	}
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Region: `[{"id":1,"name":"Kanto"}]`,
		dataset.Type: `[
			{"id":1,"name":"Normal"},
			{"id":2,"name":"Fire"},
			{"id":3,"name":"Bird"},
			{"id":4,"name":"Water"}
		]`,
		dataset.EggGroup: `[{"id":1,"name":"Monster"}]`,
	})

	s, e := outcome(t, rep, dataset.Type)
	assert.Equal(t, [2]int{3, 1}, [2]int{s, e})
	// datasets after the failing one still run
	s, e = outcome(t, rep, dataset.EggGroup)
	assert.Equal(t, [2]int{1, 0}, [2]int{s, e})

	n, _ := snk.Count(context.Background(), &schema.Type{})
	assert.Equal(t, int64(3), n)
}

func TestAtomicRollback(t *testing.T) {
	snk := iotesting.NewMemSink()
	snk.SaveErr = func(e schema.Entity) error {
		if typ, ok := e.(*schema.Type); ok && typ.Name == "Bird" {
			return errors.New("value too long")
		}
		return nil
	}
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Region: `[{"id":1,"name":"Kanto"}]`,
		dataset.Type: `[
			{"id":1,"name":"Normal"},
			{"id":3,"name":"Bird"},
			{"id":4,"name":"Water"}
		]`,
	}, dataset.Descriptor{Kind: dataset.Type, Atomic: true})

	e := entry(t, rep, dataset.Type)
	assert.Zero(t, e.Success)
	assert.Equal(t, 1, e.Errors)
	assert.True(t, e.RolledBack)
	assert.Equal(t, "ROLLED BACK", e.Status())

	ctx := context.Background()
	n, _ := snk.Count(ctx, &schema.Type{})
	assert.Zero(t, n)
	n, _ = snk.Count(ctx, &schema.Region{})
	assert.Equal(t, int64(1), n)
}

func TestAtomicStopsAtFirstWriteFailure(t *testing.T) {
	var attempted []string
	snk := iotesting.NewMemSink()
	snk.SaveErr = func(e schema.Entity) error {
		typ, ok := e.(*schema.Type)
		if !ok {
			return nil
		}
		attempted = append(attempted, typ.Name)
		if typ.Name == "Bird" {
			return errors.New("value too long")
		}
		return nil
	}
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Type: `[
			{"id":1,"name":"Normal"},
			{"id":3,"name":"Bird"},
			{"id":4,"name":"Water"},
			{"id":5,"name":"Ground"}
		]`,
	}, dataset.Descriptor{Kind: dataset.Type, Atomic: true})

	assert.Equal(t, []string{"Normal", "Bird"}, attempted)
	e := entry(t, rep, dataset.Type)
	assert.Zero(t, e.Success)
	assert.Equal(t, 1, e.Errors)
	assert.True(t, e.RolledBack)
}

func TestAtomicMissingDependencyContinues(t *testing.T) {
	snk := iotesting.NewMemSink()
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Region: `[{"id":1,"name":"Kanto"}]`,
		dataset.Generation: `[
			{"id":1,"name":"Generation I","region_id":9},
			{"id":2,"name":"Generation II","region_id":8},
			{"id":3,"name":"Generation III","region_id":1}
		]`,
	}, dataset.Descriptor{Kind: dataset.Generation, Atomic: true})

	// lookups do not touch the transaction, every record is checked
	e := entry(t, rep, dataset.Generation)
	assert.Equal(t, 2, e.Errors)
	assert.True(t, e.RolledBack)
	assert.Equal(t, 1, snk.Saves(&schema.Generation{}))
}

func TestAtomicCommit(t *testing.T) {
	snk := iotesting.NewMemSink()
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Region:     `[{"id":1,"name":"Kanto"}]`,
		dataset.Generation: `[{"id":1,"name":"Generation I","region_id":1}]`,
	}, dataset.Descriptor{Kind: dataset.Generation, Atomic: true})

	e := entry(t, rep, dataset.Generation)
	assert.Equal(t, 1, e.Success)
	assert.False(t, e.RolledBack)
}

// base has every dependency of a Pokémon record.
var base = map[dataset.Kind]string{
	dataset.Region:         `[{"id":1,"name":"Kanto"}]`,
	dataset.Type:           `[{"id":2,"name":"Fire"},{"id":3,"name":"Water"},{"id":5,"name":"Ground"}]`,
	dataset.EggGroup:       `[{"id":1,"name":"Monster"}]`,
	dataset.Generation:     `[{"id":1,"name":"Generation I","region_id":1}]`,
	dataset.Ability:        `[{"id":1,"name":"Blaze","introduced_generation_id":1}]`,
	dataset.Species:        `[{"id":4,"name":"Charmander"}]`,
	dataset.Stats:          `[{"id":4,"total":309}]`,
	dataset.EvolutionChain: `[{"id":2,"chain":null}]`,
}

func withBase(extra map[dataset.Kind]string) map[dataset.Kind]string {
	res := make(map[dataset.Kind]string, len(base)+len(extra))
	for k, v := range base {
		res[k] = v
	}
	for k, v := range extra {
		res[k] = v
	}
	return res
}

func TestPokemonReferences(t *testing.T) {
	tests := []struct {
		msg     string
		record  string
		success int
		saved   bool
		types   int
		groups  int
	}{
		{
			msg: "all resolved",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":2,"region_id":1,
				"egg_group_ids":[1],"type_ids":[2],
				"abilities":[{"ability_id":1}]}`,
			success: 1,
			saved:   true,
			types:   1,
			groups:  1,
		},
		{
			msg: "repeated ids are kept once",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":2,
				"egg_group_ids":[1,1],"type_ids":[2,3,2]}`,
			success: 1,
			saved:   true,
			types:   2,
			groups:  1,
		},
		{
			msg: "no region",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":2}`,
			success: 1,
			saved:   true,
		},
		{
			msg: "unknown region",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":2,"region_id":9}`,
		},
		{
			msg: "unknown stats",
			record: `{"id":4,"name":"Charmander","stats_id":40,"generation_id":1,
				"species_id":4,"evolution_chain_id":2}`,
		},
		{
			msg: "unknown evolution chain",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":20}`,
		},
		{
			msg: "unknown type",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":2,"type_ids":[2,18]}`,
		},
		{
			msg: "unknown egg group",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":2,"egg_group_ids":[15]}`,
		},
		{
			msg: "unknown ability keeps the pokemon",
			record: `{"id":4,"name":"Charmander","stats_id":4,"generation_id":1,
				"species_id":4,"evolution_chain_id":2,
				"abilities":[{"ability_id":1},{"ability_id":77,"is_hidden":true}]}`,
			saved: true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			snk := iotesting.NewMemSink()
			rep := seedFiles(t, snk, withBase(map[dataset.Kind]string{
				dataset.Pokemon: "[" + v.record + "]",
			}))

			s, e := outcome(t, rep, dataset.Pokemon)
			assert.Equal(t, v.success, s)
			assert.Equal(t, 1-v.success, e)

			var p schema.Pokemon
			assert.Equal(t, v.saved, snk.Get(&p, "4"))
			assert.Len(t, p.Types, v.types)
			assert.Len(t, p.EggGroups, v.groups)
		})
	}
}

func TestAbilityLinks(t *testing.T) {
	snk := iotesting.NewMemSink()
	seedFiles(t, snk, withBase(map[dataset.Kind]string{
		dataset.Pokemon: `[{"id":4,"name":"Charmander","stats_id":4,
			"generation_id":1,"species_id":4,"evolution_chain_id":2,
			"abilities":[{"ability_id":1,"is_hidden":true}]}]`,
	}))

	var links []schema.PokemonAbility
	require.NoError(t, snk.FindAll(context.Background(), &links))
	require.Len(t, links, 1)
	assert.Equal(t, int64(4), links[0].PokemonID)
	assert.Equal(t, "Blaze", links[0].Ability.Name)
	assert.True(t, links[0].IsHidden)

	// link ids are stable between runs
	snk2 := iotesting.NewMemSink()
	seedFiles(t, snk2, withBase(map[dataset.Kind]string{
		dataset.Pokemon: `[{"id":4,"name":"Charmander","stats_id":4,
			"generation_id":1,"species_id":4,"evolution_chain_id":2,
			"abilities":[{"ability_id":1}]}]`,
	}))
	var links2 []schema.PokemonAbility
	require.NoError(t, snk2.FindAll(context.Background(), &links2))
	require.Len(t, links2, 1)
	assert.Equal(t, links[0].ID, links2[0].ID)
}

// charmanderWeakTo stores Charmander, already weak to the given types, and
// Water and Ground types.
func charmanderWeakTo(t *testing.T, weak ...schema.Type) *iotesting.MemSink {
	t.Helper()
	ctx := context.Background()
	snk := iotesting.NewMemSink()
	for _, typ := range []schema.Type{{ID: 3, Name: "Water"}, {ID: 5, Name: "Ground"}} {
		require.NoError(t, snk.Save(ctx, &typ))
	}
	require.NoError(t, snk.Save(ctx, &schema.Pokemon{
		ID: 4, Name: "Charmander", Weaknesses: weak,
	}))
	return snk
}

func weaknessSet(t *testing.T, snk *iotesting.MemSink) []string {
	t.Helper()
	var p schema.Pokemon
	require.True(t, snk.Get(&p, "4"))
	res := make([]string, 0, len(p.Weaknesses))
	for _, w := range p.Weaknesses {
		res = append(res, w.Name)
	}
	return res
}

func TestWeaknessIdempotent(t *testing.T) {
	snk := charmanderWeakTo(t, schema.Type{ID: 3, Name: "Water"})
	saves := snk.Saves(&schema.Pokemon{})

	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Weakness: `[{"pokemon_name":"Charmander","weaknesses":["Water"]}]`,
	})

	s, e := outcome(t, rep, dataset.Weakness)
	assert.Equal(t, [2]int{0, 0}, [2]int{s, e})
	assert.Equal(t, saves, snk.Saves(&schema.Pokemon{}))
	assert.Equal(t, []string{"Water"}, weaknessSet(t, snk))
}

func TestWeaknessUnion(t *testing.T) {
	snk := charmanderWeakTo(t, schema.Type{ID: 3, Name: "Water"})

	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.Weakness: `[{"pokemon_name":"Charmander","weaknesses":["Water","Ground"]}]`,
	})

	s, e := outcome(t, rep, dataset.Weakness)
	assert.Equal(t, [2]int{1, 0}, [2]int{s, e})
	assert.ElementsMatch(t, []string{"Water", "Ground"}, weaknessSet(t, snk))
}

func TestWeaknessEdgeCases(t *testing.T) {
	tests := []struct {
		msg     string
		records string
		success int
		errors  int
		set     []string
	}{
		{
			msg:     "unknown pokemon",
			records: `[{"pokemon_name":"Missingno","weaknesses":["Water"]}]`,
			errors:  1,
			set:     []string{},
		},
		{
			msg:     "names are case sensitive",
			records: `[{"pokemon_name":"charmander","weaknesses":["Water"]}]`,
			errors:  1,
			set:     []string{},
		},
		{
			msg:     "no type resolves",
			records: `[{"pokemon_name":"Charmander","weaknesses":["Shadow","water"]}]`,
			errors:  1,
			set:     []string{},
		},
		{
			msg:     "some types resolve",
			records: `[{"pokemon_name":"Charmander","weaknesses":["Shadow","Ground"]}]`,
			success: 1,
			set:     []string{"Ground"},
		},
		{
			msg:     "empty list",
			records: `[{"pokemon_name":"Charmander","weaknesses":[]}]`,
			set:     []string{},
		},
		{
			msg: "repeated records",
			records: `[
				{"id":1,"pokemon_id":4,"pokemon_name":"Charmander","weaknesses":["Water"]},
				{"id":2,"pokemon_id":4,"pokemon_name":"Charmander","weaknesses":["Water","Ground"]},
				{"id":3,"pokemon_id":4,"pokemon_name":"Charmander","weaknesses":["Ground"]}
			]`,
			success: 2,
			set:     []string{"Water", "Ground"},
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			snk := charmanderWeakTo(t)
			rep := seedFiles(t, snk, map[dataset.Kind]string{
				dataset.Weakness: v.records,
			})

			s, e := outcome(t, rep, dataset.Weakness)
			assert.Equal(t, v.success, s)
			assert.Equal(t, v.errors, e)
			assert.ElementsMatch(t, v.set, weaknessSet(t, snk))
		})
	}
}

func TestEvolutionChains(t *testing.T) {
	snk := iotesting.NewMemSink()
	rep := seedFiles(t, snk, map[dataset.Kind]string{
		dataset.EvolutionChain: `[
			{"id":1,"chain":{"pokemon":{"id":1,"name":"Bulbasaur"},
				"evolutions_to":[{"pokemon":{"id":2,"name":"Ivysaur"},
				"condition":{"type":"level_up","value":16}}]}},
			{"id":2,"chain":{"pokemon":"Charmander"}},
			{"id":3},
			{"id":4,"chain":null}
		]`,
	})

	// malformed chains are kept, not rejected
	s, e := outcome(t, rep, dataset.EvolutionChain)
	assert.Equal(t, [2]int{4, 0}, [2]int{s, e})

	var c schema.EvolutionChain
	require.True(t, snk.Get(&c, "1"))
	chain := evolution.Decode([]byte(c.ChainData))
	require.NotNil(t, chain)
	require.Len(t, chain.EvolutionsTo, 1)
	assert.Equal(t, "Ivysaur", chain.EvolutionsTo[0].Pokemon.Name)
	assert.Contains(t, c.ChainData, `"evolutions_to":[]`)

	require.True(t, snk.Get(&c, "2"))
	assert.Equal(t, `{"pokemon":"Charmander"}`, c.ChainData)

	for _, key := range []string{"3", "4"} {
		require.True(t, snk.Get(&c, key))
		assert.Empty(t, c.ChainData, key)
	}
}

func TestEeveeChain(t *testing.T) {
	blob := []byte(`{
		"pokemon": {"id": 133, "name": "Eevee"},
		"evolutions_to": [
			{"pokemon": {"id": 134, "name": "Vaporeon"},
			 "condition": {"type": "item", "value": "water-stone"},
			 "evolutions_to": []},
			{"pokemon": {"id": 135, "name": "Jolteon"},
			 "condition": {"type": "item", "value": "thunder-stone"},
			 "evolutions_to": []}
		]
	}`)

	c := evolution.Decode(blob)
	require.NotNil(t, c)
	assert.Equal(t, "Eevee", c.Pokemon.Name)
	require.Len(t, c.EvolutionsTo, 2)
	for _, s := range c.EvolutionsTo {
		assert.Empty(t, s.EvolutionsTo)
	}
}
