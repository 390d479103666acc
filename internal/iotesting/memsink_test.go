package iotesting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iotesting"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemSink(t *testing.T) {
	ctx := context.Background()
	var snk sink.Sink = iotesting.NewMemSink()
	mem := snk.(*iotesting.MemSink)

	kanto := schema.Region{ID: 1, Name: "Kanto"}
	require.NoError(t, snk.Save(ctx, &kanto))
	kanto.Name = "changed after save"

	var regions []schema.Region
	require.NoError(t, snk.FindAll(ctx, &regions))
	require.Len(t, regions, 1)
	assert.Equal(t, "Kanto", regions[0].Name)

	var r schema.Region
	assert.True(t, mem.Get(&r, "1"))
	assert.False(t, mem.Get(&r, "2"))
	assert.Equal(t, 1, mem.Saves(&schema.Region{}))

	boom := errors.New("boom")
	err := snk.Transaction(ctx, func(tx sink.Sink) error {
		require.NoError(t, tx.Save(ctx, &schema.Region{ID: 2, Name: "Johto"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	n, err := snk.Count(ctx, &schema.Region{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 2, mem.Saves(&schema.Region{}))

	mem.SaveErr = func(schema.Entity) error { return boom }
	assert.ErrorIs(t, snk.Save(ctx, &kanto), boom)
	mem.FindErr = boom
	assert.ErrorIs(t, snk.FindAll(ctx, &regions), boom)
}
