package iodataset

import (
	"errors"
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"gopkg.in/yaml.v3"
)

// LoadManifest reads datasets.yaml and returns normalized descriptors in
// import order. A missing file gives the default manifest.
func LoadManifest(path string) ([]dataset.Descriptor, error) {
	m := dataset.DefaultManifest()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		gn.Warn("Dataset manifest <em>%s</em> not found, using defaults", path)
	case err != nil:
		return nil, ManifestError(path, err)
	default:
		m = &dataset.Manifest{}
		if err := yaml.Unmarshal(data, m); err != nil {
			return nil, ManifestError(path,
				fmt.Errorf("cannot parse yaml: %w", err))
		}
	}

	res, warnings := m.Normalize()
	for _, w := range warnings {
		gn.Warn("%s", w)
	}
	return res, nil
}
