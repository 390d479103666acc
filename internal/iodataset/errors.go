package iodataset

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/errcode"
)

// SourceUnavailableError is returned when a dataset cannot be read or
// decoded. The seeder skips such datasets.
func SourceUnavailableError(location string, err error) error {
	return &gn.Error{
		Code: errcode.DatasetSourceUnavailableError,
		Msg:  "Dataset <em>%s</em> is unavailable",
		Vars: []any{location},
		Err:  fmt.Errorf("cannot read dataset %s: %w", location, err),
	}
}

// SourceConfigError is returned when the import parent cannot be turned
// into a Source.
func SourceConfigError(parent string, err error) error {
	msg := `Cannot use <em>%s</em> as a dataset source

<em>How to fix:</em>
  1. Use a local directory or s3://bucket/prefix
  2. Check import.s3_region and import.s3_endpoint in config.yaml`

	return &gn.Error{
		Code: errcode.DatasetSourceConfigError,
		Msg:  msg,
		Vars: []any{parent},
		Err:  fmt.Errorf("bad dataset source %s: %w", parent, err),
	}
}

// ManifestError is returned when datasets.yaml cannot be read.
func ManifestError(path string, err error) error {
	return &gn.Error{
		Code: errcode.DatasetManifestError,
		Msg:  "Cannot read dataset manifest <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot read manifest %s: %w", path, err),
	}
}
