package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate, parents first.
func AllModels() []any {
	return []any{
		&Region{},
		&Type{},
		&EggGroup{},
		&Generation{},
		&Ability{},
		&Species{},
		&Stats{},
		&EvolutionChain{},
		&Pokemon{},
		&PokemonAbility{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
