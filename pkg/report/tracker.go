package report

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Tracker collects outcomes while datasets are imported. It is safe for
// concurrent use.
type Tracker struct {
	mu      sync.Mutex
	runID   string
	entries []Entry
}

// NewTracker creates a Tracker for the run with the given id.
func NewTracker(runID string) *Tracker {
	return &Tracker{runID: runID}
}

// Record stores the outcome of a dataset. Recording the same dataset
// again replaces its previous outcome.
func (t *Tracker) Record(dataset string, o Outcome) {
	t.put(Entry{Dataset: dataset, Outcome: o})
}

// Unavailable marks a dataset whose source could not be read.
func (t *Tracker) Unavailable(dataset string, err error) {
	e := Entry{Dataset: dataset, Unavailable: true}
	if err != nil {
		e.Reason = err.Error()
	}
	t.put(e)
}

// Summarize returns the report of everything recorded so far.
func (t *Tracker) Summarize() *Report {
	t.mu.Lock()
	defer t.mu.Unlock()

	res := &Report{RunID: t.runID, Entries: slices.Clone(t.entries)}
	for _, e := range res.Entries {
		res.Success += e.Success
		res.Errors += e.Errors
		if e.Unavailable {
			res.Unavailable++
		}
	}
	return res
}

func (t *Tracker) put(e Entry) {
	t.mu.Lock()
	if i := t.index(e.Dataset); i >= 0 {
		t.entries[i] = e
	} else {
		t.entries = append(t.entries, e)
	}
	t.mu.Unlock()

	level := slog.LevelInfo
	if e.Status() != "ok" {
		level = slog.LevelWarn
	}
	slog.Log(context.Background(), level, "Dataset imported",
		"run_id", t.runID,
		"dataset", e.Dataset,
		"status", e.Status(),
		"success", e.Success,
		"errors", e.Errors,
	)
}

func (t *Tracker) index(dataset string) int {
	return slices.IndexFunc(t.entries, func(e Entry) bool {
		return e.Dataset == dataset
	})
}
