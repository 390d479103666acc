package dataset

import (
	"encoding/json"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

// Records mirror the JSON files field by field. Optional fields are
// pointers, so an absent value stays nil instead of becoming zero.

type RegionRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TypeRecord struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

type EggGroupRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GenerationRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	RegionID int64  `json:"region_id"`
}

type AbilityRecord struct {
	ID                     int64   `json:"id"`
	Name                   string  `json:"name"`
	Description            *string `json:"description"`
	IntroducedGenerationID int64   `json:"introduced_generation_id"`
}

type SpeciesRecord struct {
	ID            int64   `json:"id"`
	PokemonNumber *string `json:"pokemon_number"`
	Name          string  `json:"name"`
	SpeciesEn     *string `json:"species_en"`
	SpeciesPt     *string `json:"species_pt"`
}

type StatsRecord struct {
	ID      int64 `json:"id"`
	Total   int   `json:"total"`
	HP      int   `json:"hp"`
	Attack  int   `json:"attack"`
	Defense int   `json:"defense"`
	SpAtk   int   `json:"sp_atk"`
	SpDef   int   `json:"sp_def"`
	Speed   int   `json:"speed"`
}

// EvolutionChainRecord keeps the chain undecoded, the seeder passes it to
// the evolution codec.
type EvolutionChainRecord struct {
	ID    int64           `json:"id"`
	Chain json.RawMessage `json:"chain"`
}

type GenderRecord struct {
	Male   float64 `json:"male"`
	Female float64 `json:"female"`
}

type PokemonAbilityRecord struct {
	AbilityID int64 `json:"ability_id"`
	IsHidden  bool  `json:"is_hidden"`
}

type PokemonRecord struct {
	ID               int64                  `json:"id"`
	Number           string                 `json:"number"`
	Name             string                 `json:"name"`
	Description      string                 `json:"description"`
	Height           float64                `json:"height"`
	Weight           float64                `json:"weight"`
	StatsID          int64                  `json:"stats_id"`
	GenerationID     int64                  `json:"generation_id"`
	SpeciesID        int64                  `json:"species_id"`
	RegionID         *int64                 `json:"region_id"`
	EvolutionChainID int64                  `json:"evolution_chain_id"`
	GenderRateValue  *int                   `json:"gender_rate_value"`
	Gender           *GenderRecord          `json:"gender"`
	EggCycles        *int                   `json:"egg_cycles"`
	EggGroupIDs      []int64                `json:"egg_group_ids"`
	TypeIDs          []int64                `json:"type_ids"`
	Abilities        []PokemonAbilityRecord `json:"abilities"`
	Sprites          *schema.Sprites        `json:"sprites"`
}

// WeaknessRecord refers to the Pokémon and the types by name. ID and
// PokemonID are informational.
type WeaknessRecord struct {
	ID          *int64   `json:"id"`
	PokemonID   *int64   `json:"pokemon_id"`
	PokemonName string   `json:"pokemon_name"`
	Weaknesses  []string `json:"weaknesses"`
}
