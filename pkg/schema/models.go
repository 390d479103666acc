// Package schema provides the persistence models of the Pokédex store.
// Models carry GORM tags for the relational backend and JSON tags for
// snapshot backends that keep one JSON document per entity.
package schema

import (
	"strconv"

	"gorm.io/datatypes"
)

// Entity is implemented by every model the seeder writes.
type Entity interface {
	// TableName returns the table (or kind) the entity belongs to.
	TableName() string

	// Key returns the primary key of the entity as a string.
	Key() string
}

// Region is a geographic region of the Pokémon world, e.g. Kanto.
type Region struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"size:100;not null"              json:"name"`
}

// Type is an elemental type, e.g. Water.
type Type struct {
	ID    int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name  string  `gorm:"size:50;not null;uniqueIndex"   json:"name"`
	Color *string `gorm:"size:20"                        json:"color,omitempty"`
}

// EggGroup determines which Pokémon can breed with each other.
type EggGroup struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"size:50;not null"               json:"name"`
}

// Generation is a game generation. It is introduced in a Region.
type Generation struct {
	ID       int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"size:50;not null"               json:"name"`
	RegionID int64  `gorm:"not null;index"                 json:"region_id"`
	Region   Region `gorm:"foreignKey:RegionID"            json:"region"`
}

// Ability is a passive skill of a Pokémon.
type Ability struct {
	ID          int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string  `gorm:"size:100;not null"              json:"name"`
	Description *string `gorm:"type:text"                      json:"description,omitempty"`

	// IntroducedGenerationID is the generation where the ability appeared
	// first.
	IntroducedGenerationID int64      `gorm:"not null;index"                   json:"introduced_generation_id"`
	IntroducedGeneration   Generation `gorm:"foreignKey:IntroducedGenerationID" json:"introduced_generation"`
}

// Species groups a Pokémon by its Pokédex classification.
type Species struct {
	ID            int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	PokedexNumber *string `gorm:"size:10"                        json:"pokedex_number,omitempty"`
	Name          string  `gorm:"size:100;not null"              json:"name"`

	// SpeciesEn and SpeciesPt are localized species titles
	// ("Seed Pokémon", "Pokémon Semente").
	SpeciesEn *string `gorm:"size:100" json:"species_en,omitempty"`
	SpeciesPt *string `gorm:"size:100" json:"species_pt,omitempty"`
}

// Stats are base stats of a Pokémon.
type Stats struct {
	ID      int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Total   int   `json:"total"`
	HP      int   `json:"hp"`
	Attack  int   `json:"attack"`
	Defense int   `json:"defense"`
	SpAtk   int   `json:"sp_atk"`
	SpDef   int   `json:"sp_def"`
	Speed   int   `json:"speed"`
}

// EvolutionChain keeps a serialized evolution tree. ChainData is an opaque
// blob produced by the evolution package.
type EvolutionChain struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	ChainData string `gorm:"type:text"                      json:"chain_data"`
}

// Pokemon is the central entity of the Pokédex.
type Pokemon struct {
	ID          int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Number      string  `gorm:"size:10;not null"               json:"number"`
	Name        string  `gorm:"size:100;not null;uniqueIndex"  json:"name"`
	Description string  `gorm:"type:text"                      json:"description"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`

	GenderRateValue *int     `json:"gender_rate_value,omitempty"`
	GenderMale      *float64 `json:"gender_male,omitempty"`
	GenderFemale    *float64 `json:"gender_female,omitempty"`
	EggCycles       *int     `json:"egg_cycles,omitempty"`

	Sprites datatypes.JSONType[Sprites] `json:"sprites"`

	StatsID          int64          `gorm:"not null"                     json:"stats_id"`
	Stats            Stats          `gorm:"foreignKey:StatsID"           json:"stats"`
	GenerationID     int64          `gorm:"not null;index"               json:"generation_id"`
	Generation       Generation     `gorm:"foreignKey:GenerationID"      json:"generation"`
	SpeciesID        int64          `gorm:"not null"                     json:"species_id"`
	Species          Species        `gorm:"foreignKey:SpeciesID"         json:"species"`
	EvolutionChainID int64          `gorm:"not null"                     json:"evolution_chain_id"`
	EvolutionChain   EvolutionChain `gorm:"foreignKey:EvolutionChainID"  json:"evolution_chain"`
	RegionID         *int64         `gorm:"index"                        json:"region_id,omitempty"`
	Region           *Region        `gorm:"foreignKey:RegionID"          json:"region,omitempty"`

	EggGroups  []EggGroup `gorm:"many2many:pokemon_egg_groups" json:"egg_groups"`
	Types      []Type     `gorm:"many2many:pokemon_types"      json:"types"`
	Weaknesses []Type     `gorm:"many2many:pokemon_weaknesses" json:"weaknesses"`
}

// PokemonAbility links a Pokémon to one of its abilities.
type PokemonAbility struct {
	// ID is a name-based UUID derived from the Pokémon and ability ids, so
	// that saving the same link twice updates a single row.
	ID        string  `gorm:"type:uuid;primaryKey"                    json:"id"`
	PokemonID int64   `gorm:"not null;uniqueIndex:idx_pokemon_ability" json:"pokemon_id"`
	Pokemon   Pokemon `gorm:"foreignKey:PokemonID"                    json:"-"`
	AbilityID int64   `gorm:"not null;uniqueIndex:idx_pokemon_ability" json:"ability_id"`
	Ability   Ability `gorm:"foreignKey:AbilityID"                    json:"ability"`
	IsHidden  bool    `gorm:"not null;default:false"                  json:"is_hidden"`
}

func (Region) TableName() string         { return "regions" }
func (Type) TableName() string           { return "types" }
func (EggGroup) TableName() string       { return "egg_groups" }
func (Generation) TableName() string     { return "generations" }
func (Ability) TableName() string        { return "abilities" }
func (Species) TableName() string        { return "species" }
func (Stats) TableName() string          { return "stats" }
func (EvolutionChain) TableName() string { return "evolution_chains" }
func (Pokemon) TableName() string        { return "pokemons" }
func (PokemonAbility) TableName() string { return "pokemon_abilities" }

func (r Region) Key() string         { return idKey(r.ID) }
func (t Type) Key() string           { return idKey(t.ID) }
func (e EggGroup) Key() string       { return idKey(e.ID) }
func (g Generation) Key() string     { return idKey(g.ID) }
func (a Ability) Key() string        { return idKey(a.ID) }
func (s Species) Key() string        { return idKey(s.ID) }
func (s Stats) Key() string          { return idKey(s.ID) }
func (e EvolutionChain) Key() string { return idKey(e.ID) }
func (p Pokemon) Key() string        { return idKey(p.ID) }
func (l PokemonAbility) Key() string { return l.ID }

// HasWeakness reports whether the Pokémon is already weak to a type.
func (p *Pokemon) HasWeakness(typeID int64) bool {
	for i := range p.Weaknesses {
		if p.Weaknesses[i].ID == typeID {
			return true
		}
	}
	return false
}

func idKey(id int64) string {
	return strconv.FormatInt(id, 10)
}
