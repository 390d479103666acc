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
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodataset"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iologger"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/ioseed"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/spf13/cobra"
)

// getSeedCmd returns the seed command.
func getSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Import Pokédex datasets into the database",
		Long: `Import Pokédex datasets into the configured store.

Datasets are read from import.parent: a local directory or an
s3://bucket/prefix location. File names come from datasets.yaml in the
configuration directory.

Seeding runs only when the store holds no Pokémon, use --force to seed
anyway. Records that fail are logged and counted, a missing dataset is
reported as unavailable. Both leave the rest of the run going.

Examples:
  pokedb seed
  pokedb seed --parent ./data --jobs 4
  pokedb seed --parent s3://pokedex/snapshots
  pokedb seed --force --no-progress`,
		RunE: runSeed,
	}

	seedCmd.Flags().BoolP("force", "f", false,
		"seed even if the store already has Pokémon")
	seedCmd.Flags().StringP("parent", "p", "",
		"directory or s3://bucket/prefix with dataset files")
	seedCmd.Flags().IntP("jobs", "j", 0,
		"number of relation indices loaded concurrently")
	seedCmd.Flags().Bool("no-progress", false,
		"do not show progress bars")
	seedCmd.Flags().StringP("metrics-file", "m", "",
		"write Prometheus metrics of the run to this file")

	return seedCmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	for _, f := range seedFlags() {
		f(cmd)
	}
	cfg.Update(opts)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	descs, err := iodataset.LoadManifest(config.DatasetsFilePath(cfg.HomeDir))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	src, err := iodataset.NewSource(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	snk, err := openSink(ctx, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer snk.Close()

	guard := ioseed.EmptyGuard(snk)
	if cfg.Import.Force {
		guard = ioseed.ForceGuard()
	}

	gn.Info("Seeding from <em>%s</em>", src.Location(""))
	res, err := ioseed.New(cfg, snk, src, descs).RunIfEmpty(ctx, guard)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if res == nil {
		gn.Info("Use <em>pokedb seed --force</em> to seed anyway")
		return nil
	}

	if res.HasFailures() && cfg.Log.Destination == "file" {
		gn.Warn("Some records were not imported, details are in <em>%s</em>",
			filepath.Join(config.LogDir(cfg.HomeDir), iologger.LogFile))
	}
	return nil
}
