package sink_test

import (
	"errors"
	"testing"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTarget(t *testing.T) {
	var regions []schema.Region
	slice, elem, kind, err := sink.Target(&regions)
	require.NoError(t, err)
	assert.Equal(t, "regions", kind)
	assert.Equal(t, "Region", elem.Name())
	assert.Equal(t, 0, slice.Len())

	var links []schema.PokemonAbility
	_, _, kind, err = sink.Target(&links)
	require.NoError(t, err)
	assert.Equal(t, "pokemon_abilities", kind)
}

func TestTargetBad(t *testing.T) {
	var regions []schema.Region
	var nilPtr *[]schema.Region
	tests := []struct {
		msg  string
		dest any
	}{
		{"not a pointer", regions},
		{"nil pointer", nilPtr},
		{"not a slice", &schema.Region{}},
		{"not an entity", &[]string{}},
		{"pointer elements", &[]*schema.Region{}},
	}

	for _, v := range tests {
		_, _, _, err := sink.Target(v.dest)
		assert.True(t, errors.Is(err, sink.ErrBadTarget), v.msg)
	}
}
