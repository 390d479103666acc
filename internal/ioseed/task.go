package ioseed

import (
	"context"
	"log/slog"

	"github.com/cheggaaa/pb/v3"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/errcode"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/report"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
	"golang.org/x/sync/errgroup"
)

// task is the import of one dataset.
type task struct {
	runID string
	snk   sink.Sink
	src   dataset.Source
	desc  dataset.Descriptor

	// jobs limits concurrent index builds.
	jobs         int
	withProgress bool

	// atomic is set when the dataset runs inside one transaction.
	atomic bool
}

// buildIndices runs index builders concurrently and waits for all of
// them. Records are processed only after this barrier.
func (t *task) buildIndices(
	ctx context.Context,
	builders ...func(context.Context) error,
) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(t.jobs, 1))
	for _, b := range builders {
		g.Go(func() error {
			return b(gctx)
		})
	}
	return g.Wait()
}

// save writes an entity. It returns true on success, which is what the
// record loop counts.
func (t *task) save(ctx context.Context, e schema.Entity) (bool, error) {
	if err := t.snk.Save(ctx, e); err != nil {
		return false, PersistenceError(e.TableName(), e.Key(), err)
	}
	return true, nil
}

// importRecords runs fn on every record and tallies the results. fn
// returns false with nil error for records that changed nothing; those
// are neither successes nor errors. Atomic datasets stop at the first
// failed write.
func importRecords[R any](
	ctx context.Context,
	t *task,
	recs []R,
	fn func(context.Context, R) (bool, error),
) (report.Outcome, error) {
	var res report.Outcome
	bar := t.progress(len(recs))
	defer bar.finish()

	for i := range recs {
		if err := ctx.Err(); err != nil {
			return res, CancelledError(err)
		}

		written, err := fn(ctx, recs[i])
		bar.inc()
		switch {
		case err != nil:
			res.Errors++
			t.logRecordError(recs[i], err)
			if t.atomic && hasCode(err, errcode.ImportPersistenceError) {
				// the transaction cannot take more statements
				slog.Warn("Atomic dataset stopped at first write failure",
					"run_id", t.runID,
					"dataset", t.desc.Kind.Title(),
					"skipped", len(recs)-i-1,
				)
				return res, nil
			}
		case written:
			res.Success++
		}
	}
	return res, nil
}

func (t *task) logRecordError(rec any, err error) {
	title := t.desc.Kind.Title()
	if hasCode(err, errcode.ImportMissingDependencyError) {
		slog.Warn("Data dependency error",
			"run_id", t.runID,
			"dataset", title,
			"record", rec,
			"error", err,
		)
		return
	}
	slog.Error("Error importing",
		"run_id", t.runID,
		"dataset", title,
		"record", rec,
		"error", err,
	)
}

type progress struct {
	bar *pb.ProgressBar
}

// progress shows a bar for the long record loops.
func (t *task) progress(total int) *progress {
	long := t.desc.Kind == dataset.Pokemon || t.desc.Kind == dataset.Weakness
	if !t.withProgress || !long || total == 0 {
		return &progress{}
	}

	bar := pb.Full.Start(total)
	bar.Set("prefix", t.desc.Kind.Title()+": ")
	bar.Set(pb.CleanOnFinish, true)
	return &progress{bar: bar}
}

func (p *progress) inc() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
