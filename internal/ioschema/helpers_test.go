package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCollationSQL(t *testing.T) {
	tests := []struct {
		msg string
		col columnDef
		exp string
	}{
		{
			msg: "types",
			col: columnDef{"types", "name", 50},
			exp: `ALTER TABLE types ALTER COLUMN name TYPE VARCHAR(50) COLLATE "C"`,
		},
		{
			msg: "pokemons",
			col: columnDef{"pokemons", "name", 100},
			exp: `ALTER TABLE pokemons ALTER COLUMN name TYPE VARCHAR(100) COLLATE "C"`,
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.exp, formatCollationSQL(v.col), v.msg)
	}
}

func TestCollationError(t *testing.T) {
	err := CollationError("types", "name", errors.New("denied"))
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SchemaCollationError, gnErr.Code)
	assert.Equal(t, []any{"types", "name"}, gnErr.Vars)
	assert.Contains(t, gnErr.Err.Error(), "types.name")
	assert.Contains(t, gnErr.Err.Error(), "denied")
}
