// Package dataset describes the JSON snapshots the seeder imports: which
// kinds exist, the order they are imported in, where their files are, and
// the shape of their records.
package dataset

import (
	"context"
	"io"
)

// Kind identifies one dataset and the entity kind it produces.
type Kind string

const (
	Region         Kind = "region"
	Type           Kind = "type"
	EggGroup       Kind = "egg_group"
	Generation     Kind = "generation"
	Ability        Kind = "ability"
	Species        Kind = "species"
	Stats          Kind = "stats"
	EvolutionChain Kind = "evolution_chain"
	Pokemon        Kind = "pokemon"
	Weakness       Kind = "weakness"
)

var order = []Kind{
	Region, Type, EggGroup, Generation, Ability,
	Species, Stats, EvolutionChain, Pokemon, Weakness,
}

var titles = map[Kind]string{
	Region:         "Regions",
	Type:           "Types",
	EggGroup:       "Egg Groups",
	Generation:     "Generations",
	Ability:        "Abilities",
	Species:        "Species",
	Stats:          "Stats",
	EvolutionChain: "Evolution Chains",
	Pokemon:        "Pokémon",
	Weakness:       "Weaknesses",
}

var files = map[Kind]string{
	Region:         "01_region.json",
	Type:           "02_type.json",
	EggGroup:       "03_egg_group.json",
	Generation:     "04_generation.json",
	Ability:        "05_ability.json",
	Species:        "06_species.json",
	Stats:          "07_stats.json",
	EvolutionChain: "08_evolution_chains.json",
	Weakness:       "09_weaknesses.json",
	Pokemon:        "10_pokemon.json",
}

// Order returns all kinds in the order they have to be imported. Every
// kind comes after the kinds its records refer to.
func Order() []Kind {
	res := make([]Kind, len(order))
	copy(res, order)
	return res
}

// Title is a human-readable plural name of the kind.
func (k Kind) Title() string {
	if t, ok := titles[k]; ok {
		return t
	}
	return string(k)
}

// DefaultFile is the file name used when the manifest does not name one.
func (k Kind) DefaultFile() string {
	return files[k]
}

// IsValid reports whether k is one of the known kinds.
func (k Kind) IsValid() bool {
	_, ok := titles[k]
	return ok
}

// Source gives access to dataset files by name.
type Source interface {
	// Open returns a reader of the named dataset file.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Location returns a human-readable location of the named file
	// (path or URL) for logs and errors.
	Location(name string) string
}
