package iodataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
)

// Load reads the named dataset and decodes it into records. The document
// has to be a JSON array; "null" and an empty file give no records.
// Unknown fields are ignored. Any read or decode problem is returned as
// SourceUnavailableError.
func Load[R any](
	ctx context.Context,
	src dataset.Source,
	name string,
) ([]R, error) {
	loc := src.Location(name)

	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, SourceUnavailableError(loc, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, SourceUnavailableError(loc, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []R{}, nil
	}

	var res []R
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, SourceUnavailableError(loc,
			fmt.Errorf("cannot decode %s: %w", name, err))
	}
	if res == nil {
		res = []R{}
	}
	return res, nil
}
