package ioseed

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/evolution"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
)

func importEvolutionChains(ctx context.Context, t *task) (report.Outcome, error) {
	recs, err := iodataset.Load[dataset.EvolutionChainRecord](ctx, t.src, t.desc.File)
	if err != nil {
		return report.Outcome{}, err
	}

	return importRecords(ctx, t, recs,
		func(ctx context.Context, r dataset.EvolutionChainRecord) (bool, error) {
			return t.save(ctx, &schema.EvolutionChain{
				ID:        r.ID,
				ChainData: chainData(r.ID, r.Chain),
			})
		})
}

// chainData turns the raw chain into the stored blob. Valid trees are
// stored canonically encoded, malformed ones verbatim.
func chainData(id int64, raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	chain, err := evolution.Parse(raw)
	if err == nil {
		var enc []byte
		if enc, err = evolution.Encode(chain); err == nil {
			slog.Debug("Evolution chain",
				"evolution_chain_id", id,
				"depth", chain.Depth(),
				"members", chain.Members(),
			)
			return string(enc)
		}
	}

	slog.Warn("Malformed evolution chain is stored as is",
		"evolution_chain_id", id,
		"error", err,
	)
	return string(raw)
}
