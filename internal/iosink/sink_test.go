package iosink_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodb"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/ioschema"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iosink"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iotesting"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotConnected(t *testing.T) {
	_, err := iosink.New(iodb.NewPgxOperator())
	assert.Error(t, err)
}

func setup(t *testing.T) sink.Sink {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx, cfg))

	snk, err := iosink.New(op)
	require.NoError(t, err)
	t.Cleanup(func() { snk.Close() })
	return snk
}

func TestSaveFindAll(t *testing.T) {
	snk := setup(t)
	ctx := context.Background()

	kanto := schema.Region{ID: 1, Name: "Kanto"}
	require.NoError(t, snk.Save(ctx, &kanto))
	require.NoError(t, snk.Save(ctx, &schema.Generation{
		ID: 1, Name: "Generation I", RegionID: 1, Region: kanto,
	}))

	var gens []schema.Generation
	require.NoError(t, snk.FindAll(ctx, &gens))
	require.Len(t, gens, 1)
	assert.Equal(t, "Kanto", gens[0].Region.Name)

	// saving again replaces
	kanto.Name = "Kanto Region"
	require.NoError(t, snk.Save(ctx, &kanto))
	n, err := snk.Count(ctx, &schema.Region{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTransactionRollback(t *testing.T) {
	snk := setup(t)
	ctx := context.Background()

	boom := errors.New("boom")
	err := snk.Transaction(ctx, func(tx sink.Sink) error {
		if err := tx.Save(ctx, &schema.Type{ID: 1, Name: "Fire"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := snk.Count(ctx, &schema.Type{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
