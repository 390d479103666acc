// Package report accumulates per-dataset import outcomes of a seed run and
// renders the final summary.
package report

import (
	"fmt"
	"strings"
)

// Outcome counts the records of one dataset.
type Outcome struct {
	// Success is the number of records written to the store.
	Success int
	// Errors is the number of records rejected.
	Errors int
	// RolledBack is true when an atomic dataset was undone because of
	// failed records. Success is zero in that case.
	RolledBack bool
}

// Entry is the outcome of one dataset.
type Entry struct {
	Dataset string
	Outcome
	// Unavailable marks a dataset whose source could not be read.
	Unavailable bool
	// Reason describes why the dataset was unavailable.
	Reason string
}

// Status is a short verdict for the entry.
func (e Entry) Status() string {
	switch {
	case e.Unavailable:
		return "UNAVAILABLE"
	case e.RolledBack:
		return "ROLLED BACK"
	case e.Errors > 0:
		return "FAILED"
	default:
		return "ok"
	}
}

// String renders the per-dataset line of the summary.
func (e Entry) String() string {
	if e.Unavailable {
		return fmt.Sprintf("%s: %s (source could not be read)",
			e.Dataset, e.Status())
	}
	return fmt.Sprintf("%s: %s (%d succeeded, %d failed)",
		e.Dataset, e.Status(), e.Success, e.Errors)
}

// Report is the summary of a whole run.
type Report struct {
	// RunID identifies the run in logs.
	RunID   string
	Entries []Entry

	Success     int
	Errors      int
	Unavailable int
}

// HasFailures reports whether any record failed or any dataset was
// unavailable.
func (r *Report) HasFailures() bool {
	return r.Errors > 0 || r.Unavailable > 0
}

// Entry returns the entry of a dataset.
func (r *Report) Entry(dataset string) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Dataset == dataset {
			return e, true
		}
	}
	return Entry{}, false
}

// Lines renders the summary: one line per dataset in the order they were
// recorded, then the totals.
func (r *Report) Lines() []string {
	res := make([]string, 0, len(r.Entries)+1)
	for _, e := range r.Entries {
		res = append(res, e.String())
	}
	total := fmt.Sprintf("Total: %d succeeded, %d failed", r.Success, r.Errors)
	if r.Unavailable > 0 {
		total += fmt.Sprintf(", %d dataset(s) unavailable", r.Unavailable)
	}
	return append(res, total)
}

func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
