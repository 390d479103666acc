/*
Copyright © 2026 The pokedb Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodb"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/ioschema"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iosqlite"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var forceCreate bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the Pokédex database schema from scratch.

For PostgreSQL this command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks for existing tables and prompts for confirmation
  3. Creates all tables using GORM AutoMigrate
  4. Sets collation for name sorting

For SQLite (database.driver: sqlite) it creates the snapshot file and
removes previously stored entities after confirmation.

Use --force to skip confirmation and drop existing data.

Examples:
  pokedb create
  pokedb create --force
  pokedb create -f`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")

	return createCmd
}

func runCreate(
	cmd *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Database.Driver == "sqlite" {
		return createSQLite(ctx, force)
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: %s@%s:%d/%s",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if hasTables {
		ok, err := dropConfirmed(force, "Creating schema will drop ALL "+
			"existing tables and data.")
		if err != nil || !ok {
			return err
		}
		gn.Info("Dropping all existing tables...")
		if err := op.DropAllTables(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("All tables dropped")
	}

	sm := ioschema.NewManager(op)

	gn.Info("Creating schema using GORM AutoMigrate...")
	if err := sm.Create(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("\nDatabase schema creation complete!")
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'pokedb seed' to import datasets")

	return nil
}

func createSQLite(ctx context.Context, force bool) error {
	path := cfg.SQLiteFilePath()
	snk, err := iosqlite.Open(ctx, path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer snk.Close()

	n, err := snk.Count(ctx, &schema.Pokemon{})
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if n > 0 {
		ok, err := dropConfirmed(force, "Creating snapshot will remove ALL "+
			"stored entities.")
		if err != nil || !ok {
			return err
		}
		if err = iosqlite.Reset(ctx, snk); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("All entities removed")
	}

	gn.Info("\nSQLite snapshot <em>%s</em> is ready!", path)
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'pokedb seed' to import datasets")
	return nil
}

// dropConfirmed returns true if existing data may be dropped.
func dropConfirmed(force bool, warning string) (bool, error) {
	if force {
		gn.Info("Existing data will be dropped (--force enabled)")
		return true, nil
	}

	gn.Warn("\nWarning: Database contains existing data.")
	gn.Warn(warning)
	ok, err := confirm(os.Stdin, "Do you want to continue?")
	if err != nil {
		gn.Warn("Failed to read user input")
		return false, err
	}
	if !ok {
		gn.Info("Aborted. No changes made.")
	}
	return ok, nil
}
