package dataset

import (
	"fmt"
	"strings"
)

// Descriptor tells the seeder where to find a dataset and how to import
// it.
type Descriptor struct {
	Kind Kind   `yaml:"kind"`
	File string `yaml:"file"`

	// Atomic imports the whole dataset in one transaction. A single failed
	// record rolls back the dataset. By default every record is committed
	// on its own.
	Atomic bool `yaml:"atomic"`
}

// Manifest is the content of datasets.yaml.
type Manifest struct {
	Datasets []Descriptor `yaml:"datasets"`
}

// DefaultManifest describes all kinds with their default files.
func DefaultManifest() *Manifest {
	res := &Manifest{Datasets: make([]Descriptor, 0, len(order))}
	for _, k := range order {
		res.Datasets = append(res.Datasets, Descriptor{Kind: k, File: k.DefaultFile()})
	}
	return res
}

// Normalize returns descriptors for every kind in import order. Kinds the
// manifest misses get defaults. Unknown and repeated kinds are dropped and
// reported as warnings.
func (m *Manifest) Normalize() ([]Descriptor, []string) {
	var warnings []string
	byKind := make(map[Kind]Descriptor)
	if m != nil {
		for _, d := range m.Datasets {
			d.Kind = Kind(strings.ToLower(strings.TrimSpace(string(d.Kind))))
			d.File = strings.TrimSpace(d.File)
			if !d.Kind.IsValid() {
				warnings = append(warnings,
					fmt.Sprintf("unknown dataset kind '%s', ignoring", d.Kind))
				continue
			}
			if _, ok := byKind[d.Kind]; ok {
				warnings = append(warnings,
					fmt.Sprintf("dataset '%s' is listed more than once, "+
						"using the first entry", d.Kind))
				continue
			}
			byKind[d.Kind] = d
		}
	}

	res := make([]Descriptor, 0, len(order))
	for _, k := range order {
		d, ok := byKind[k]
		if !ok {
			d = Descriptor{Kind: k}
		}
		if d.File == "" {
			d.File = k.DefaultFile()
		}
		res = append(res, d)
	}
	return res, warnings
}
