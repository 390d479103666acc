// Package iodataset reads the JSON snapshots and the dataset manifest.
// Snapshots come either from a local directory or from an S3 bucket.
package iodataset

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
)

// NewSource creates a dataset.Source for config.Import.Parent. Parents
// that start with "s3://" are read from S3, everything else is a local
// directory.
func NewSource(
	ctx context.Context,
	cfg *config.Config,
) (dataset.Source, error) {
	if cfg.IsS3Parent() {
		return NewS3Source(ctx, cfg.Import)
	}
	return NewDirSource(cfg.Import.Parent), nil
}

type dirSource struct {
	dir string
}

// NewDirSource creates a Source that reads files from dir.
func NewDirSource(dir string) dataset.Source {
	return &dirSource{dir: dir}
}

func (d *dirSource) Open(
	_ context.Context,
	name string,
) (io.ReadCloser, error) {
	return os.Open(d.Location(name))
}

func (d *dirSource) Location(name string) string {
	return filepath.Join(d.dir, name)
}
