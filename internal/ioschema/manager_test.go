package ioschema_test

import (
	"context"
	"testing"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodb"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/ioschema"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iotesting"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/lifecycle"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ImplementsInterface(t *testing.T) {
	op := iodb.NewPgxOperator()
	var _ lifecycle.SchemaManager = ioschema.NewManager(op)
}

func TestManager_NotConnected(t *testing.T) {
	mgr := ioschema.NewManager(iodb.NewPgxOperator())
	err := mgr.Create(context.Background(), config.New())
	assert.Error(t, err)
}

func TestManager_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))
	mgr := ioschema.NewManager(op)
	require.NoError(t, mgr.Create(ctx, cfg))
	// AutoMigrate is idempotent
	require.NoError(t, mgr.Create(ctx, cfg))

	for _, tbl := range []string{
		schema.Region{}.TableName(),
		schema.Pokemon{}.TableName(),
		schema.PokemonAbility{}.TableName(),
		"pokemon_types",
		"pokemon_weaknesses",
		"pokemon_egg_groups",
	} {
		exists, err := op.TableExists(ctx, tbl)
		require.NoError(t, err)
		assert.True(t, exists, tbl)
	}

	var collation string
	err := op.Pool().QueryRow(ctx, `
		SELECT collation_name FROM information_schema.columns
		WHERE table_name = 'types' AND column_name = 'name'`,
	).Scan(&collation)
	require.NoError(t, err)
	assert.Equal(t, "C", collation)
}
