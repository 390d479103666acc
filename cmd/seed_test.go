package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iosqlite"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSeedCmd_Flags(t *testing.T) {
	cmd := getSeedCmd()
	assert.Equal(t, "seed", cmd.Use)

	tests := []struct {
		name      string
		shorthand string
		def       string
	}{
		{"force", "f", "false"},
		{"parent", "p", ""},
		{"jobs", "j", "0"},
		{"no-progress", "", "false"},
		{"metrics-file", "m", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.shorthand, f.Shorthand)
			assert.Equal(t, tt.def, f.DefValue)
		})
	}
}

func TestGetSeedCmd_Examples(t *testing.T) {
	cmd := getSeedCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())

	helpText := buf.String()
	assert.Contains(t, helpText, "pokedb seed --parent ./data")
	assert.Contains(t, helpText, "s3://")
}

func TestSeedFlags(t *testing.T) {
	opts = nil
	cmd := getSeedCmd()
	require.NoError(t, cmd.ParseFlags([]string{
		"--force", "--parent", "/srv/pokedex", "-j", "2",
		"--no-progress", "-m", "/tmp/pokedb.prom",
	}))

	for _, f := range seedFlags() {
		f(cmd)
	}

	c := config.New()
	c.Update(opts)
	assert.True(t, c.Import.Force)
	assert.Equal(t, "/srv/pokedex", c.Import.Parent)
	assert.Equal(t, 2, c.JobsNumber)
	assert.False(t, c.Import.WithProgress)
	assert.Equal(t, "/tmp/pokedb.prom", c.Import.MetricsFile)
}

func TestSeedFlagsUnset(t *testing.T) {
	opts = nil
	cmd := getSeedCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	for _, f := range seedFlags() {
		f(cmd)
	}
	assert.Empty(t, opts)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		err   bool
	}{
		{"yes\n", true, false},
		{"Y\n", true, false},
		{"  YES  \n", true, false},
		{"no\n", false, false},
		{"\n", false, false},
		{"yes", true, false},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ok, err := confirm(strings.NewReader(tt.input), "Continue?")
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRunSeedSQLite(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, iofsSetup(home))

	data := filepath.Join("..", "internal", "ioseed", "testdata", "pokedex")
	path := filepath.Join(t.TempDir(), "pokedex.sqlite")

	cfg = config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(home),
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabaseSQLitePath(path),
		config.OptImportWithProgress(false),
		config.OptLogDestination("stderr"),
	})
	opts = nil

	cmd := getSeedCmd()
	cmd.SetContext(context.Background())
	require.NoError(t, cmd.ParseFlags([]string{"--parent", data, "-j", "2"}))
	require.NoError(t, runSeed(cmd, nil))

	ctx := context.Background()
	snk, err := iosqlite.Open(ctx, path)
	require.NoError(t, err)
	defer snk.Close()

	n, err := snk.Count(ctx, &schema.Pokemon{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = os.Stat(filepath.Join(config.ConfigDir(home), "datasets.yaml"))
	assert.NoError(t, err)
}
