package cmd

import (
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iofs"
)

func iofsSetup(home string) error {
	if err := iofs.EnsureDirs(home); err != nil {
		return err
	}
	if err := iofs.EnsureConfigFile(home); err != nil {
		return err
	}
	return iofs.EnsureDatasetsFile(home)
}
