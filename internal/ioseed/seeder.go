// Package ioseed implements the Seeder: it imports the Pokédex datasets
// into a Sink in dependency order and reports per-dataset outcomes.
package ioseed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iometrics"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/errcode"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/lifecycle"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
)

type state int

const (
	idle state = iota
	running
	completed
)

// seeder implements the lifecycle.Seeder interface.
type seeder struct {
	cfg      *config.Config
	snk      sink.Sink
	src      dataset.Source
	datasets []dataset.Descriptor

	mu     sync.Mutex
	state  state
	report *report.Report
}

// New creates a Seeder. Datasets are imported in the order of
// dataset.Order(), descriptors only tell where the files are and how to
// import them.
func New(
	cfg *config.Config,
	snk sink.Sink,
	src dataset.Source,
	datasets []dataset.Descriptor,
) lifecycle.Seeder {
	m := &dataset.Manifest{Datasets: datasets}
	descs, warnings := m.Normalize()
	for _, w := range warnings {
		slog.Warn("Dataset manifest", "warning", w)
	}
	return &seeder{cfg: cfg, snk: snk, src: src, datasets: descs}
}

// EmptyGuard allows seeding when the sink holds no Pokémon.
func EmptyGuard(snk sink.Sink) lifecycle.Guard {
	return func(ctx context.Context) (bool, error) {
		n, err := snk.Count(ctx, &schema.Pokemon{})
		if err != nil {
			return false, SinkReadError(schema.Pokemon{}.TableName(), err)
		}
		return n == 0, nil
	}
}

// ForceGuard always allows seeding.
func ForceGuard() lifecycle.Guard {
	return func(context.Context) (bool, error) {
		return true, nil
	}
}

// RunIfEmpty seeds once per process. After a completed run it returns
// the report of that run without importing again.
func (s *seeder) RunIfEmpty(
	ctx context.Context,
	guard lifecycle.Guard,
) (*report.Report, error) {
	s.mu.Lock()
	switch s.state {
	case completed:
		res := s.report
		s.mu.Unlock()
		return res, nil
	case running:
		s.mu.Unlock()
		return nil, AlreadyRunningError()
	}
	s.mu.Unlock()

	ok, err := guard(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.Info("Store already has Pokémon, seeding skipped")
		gn.Info("Store already has Pokémon, seeding skipped")
		return nil, nil
	}

	return s.Seed(ctx)
}

// Seed imports all datasets. Failed records and unavailable datasets
// are reported, only store read failures and cancellation stop the run.
func (s *seeder) Seed(ctx context.Context) (*report.Report, error) {
	s.mu.Lock()
	switch s.state {
	case completed:
		res := s.report
		s.mu.Unlock()
		return res, nil
	case running:
		s.mu.Unlock()
		return nil, AlreadyRunningError()
	}
	s.state = running
	s.mu.Unlock()

	res, err := s.run(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = idle
		return nil, err
	}
	s.state = completed
	s.report = res
	return res, nil
}

func (s *seeder) run(ctx context.Context) (*report.Report, error) {
	startTime := time.Now()
	runID := uuid.NewString()
	tracker := report.NewTracker(runID)
	metrics := iometrics.New()

	slog.Info("Starting seeding",
		"run_id", runID,
		"parent", s.cfg.Import.Parent,
		"datasets", len(s.datasets),
	)

	for _, desc := range s.datasets {
		if err := ctx.Err(); err != nil {
			return nil, CancelledError(err)
		}

		dsStart := time.Now()
		entry, err := s.importDataset(ctx, runID, tracker, desc)
		if err != nil {
			slog.Error("Seeding stopped",
				"run_id", runID,
				"dataset", desc.Kind.Title(),
				"error", err,
			)
			return nil, err
		}
		metrics.Observe(entry, time.Since(dsStart))
	}

	res := tracker.Summarize()
	duration := time.Since(startTime)
	metrics.Finish(time.Now())
	s.writeMetrics(metrics)

	slog.Info("Seeding complete",
		"run_id", runID,
		"success", res.Success,
		"errors", res.Errors,
		"unavailable", res.Unavailable,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Seeding complete
%s
Elapsed time: <em>%s</em>`,
		res.String(),
		gnfmt.TimeString(duration.Seconds()),
	)

	return res, nil
}

// importDataset imports one dataset and records its outcome. Returned
// errors stop the run.
func (s *seeder) importDataset(
	ctx context.Context,
	runID string,
	tracker *report.Tracker,
	desc dataset.Descriptor,
) (report.Entry, error) {
	title := desc.Kind.Title()
	t := &task{
		runID:        runID,
		snk:          s.snk,
		src:          s.src,
		desc:         desc,
		jobs:         s.cfg.JobsNumber,
		withProgress: s.cfg.Import.WithProgress,
	}
	imp := importerFor(desc.Kind)

	var out report.Outcome
	var err error
	if desc.Atomic {
		out, err = s.importAtomic(ctx, t, imp)
	} else {
		out, err = imp(ctx, t)
	}

	switch {
	case hasCode(err, errcode.DatasetSourceUnavailableError):
		slog.Warn("Dataset unavailable",
			"run_id", runID,
			"dataset", title,
			"location", s.src.Location(desc.File),
			"error", err,
		)
		tracker.Unavailable(title, err)
	case err != nil:
		return report.Entry{}, err
	default:
		tracker.Record(title, out)
		gn.Info("%s: imported <em>%s</em>, failed <em>%s</em>",
			title,
			humanize.Comma(int64(out.Success)),
			humanize.Comma(int64(out.Errors)),
		)
	}

	entry, _ := tracker.Summarize().Entry(title)
	return entry, nil
}

// importAtomic runs the importer in a transaction. Any failed record
// rolls back the whole dataset.
func (s *seeder) importAtomic(
	ctx context.Context,
	t *task,
	imp importer,
) (report.Outcome, error) {
	var out report.Outcome
	var done bool
	// a transaction is one connection, indices are loaded one by one
	t.jobs = 1
	t.atomic = true

	err := s.snk.Transaction(ctx, func(tx sink.Sink) error {
		t.snk = tx
		var err error
		out, err = imp(ctx, t)
		if err != nil {
			return err
		}
		if out.Errors > 0 {
			return RolledBackError(t.desc.Kind.Title(), out.Errors)
		}
		done = true
		return nil
	})

	switch {
	case hasCode(err, errcode.ImportRolledBackError):
		slog.Warn("Dataset rolled back",
			"run_id", t.runID,
			"dataset", t.desc.Kind.Title(),
			"errors", out.Errors,
		)
		return report.Outcome{Errors: out.Errors, RolledBack: true}, nil
	case err != nil && done:
		// commit failed after all records were processed
		slog.Error("Cannot commit dataset",
			"run_id", t.runID,
			"dataset", t.desc.Kind.Title(),
			"error", err,
		)
		return report.Outcome{
			Errors:     out.Success + out.Errors,
			RolledBack: true,
		}, nil
	default:
		return out, err
	}
}

func (s *seeder) writeMetrics(metrics *iometrics.Recorder) {
	path := s.cfg.Import.MetricsFile
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		slog.Error("Cannot write metrics", "path", path, "error", err)
		gn.Warn("Cannot write metrics to <em>%s</em>", path)
		return
	}
	slog.Info("Metrics written", "path", path)
}
