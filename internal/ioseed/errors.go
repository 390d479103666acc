package ioseed

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/errcode"
)

// MissingDependencyError is returned for a record that refers to an
// entity that was not imported.
func MissingDependencyError(kind string, key any) error {
	return &gn.Error{
		Code: errcode.ImportMissingDependencyError,
		Msg:  "Referenced %s <em>%v</em> does not exist",
		Vars: []any{kind, key},
		Err:  fmt.Errorf("missing %s %v", kind, key),
	}
}

// PersistenceError is returned when the store rejects an entity.
func PersistenceError(kind, key string, err error) error {
	return &gn.Error{
		Code: errcode.ImportPersistenceError,
		Msg:  "Cannot save %s <em>%s</em>",
		Vars: []any{kind, key},
		Err:  fmt.Errorf("cannot save %s %s: %w", kind, key, err),
	}
}

// SinkReadError is returned when entities cannot be read back from the
// store. It stops the run.
func SinkReadError(kind string, err error) error {
	msg := `Cannot read <em>%s</em> from the store

<em>How to fix:</em>
  1. Check that the database is reachable
  2. Run <em>pokedb create</em> to create the schema`

	return &gn.Error{
		Code: errcode.ImportSinkReadError,
		Msg:  msg,
		Vars: []any{kind},
		Err:  fmt.Errorf("cannot read %s: %w", kind, err),
	}
}

// RolledBackError aborts the transaction of an atomic dataset.
func RolledBackError(dataset string, failed int) error {
	return &gn.Error{
		Code: errcode.ImportRolledBackError,
		Msg:  "Dataset <em>%s</em> rolled back, %d record(s) failed",
		Vars: []any{dataset, failed},
		Err:  fmt.Errorf("%s rolled back after %d failed records", dataset, failed),
	}
}

// AlreadyRunningError is returned when seeding is triggered while a run
// is in progress.
func AlreadyRunningError() error {
	return &gn.Error{
		Code: errcode.ImportAlreadyRunningError,
		Msg:  "Seeding is already running",
		Err:  fmt.Errorf("seeding is already running"),
	}
}

// CancelledError is returned when the context is done between records.
func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  "Seeding was cancelled",
		Err:  fmt.Errorf("seeding cancelled: %w", err),
	}
}

// hasCode reports whether err, or any error joined into it, is a gn.Error
// with the given code.
func hasCode(err error, code gn.ErrorCode) bool {
	if err == nil {
		return false
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Code == code {
		return true
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if hasCode(e, code) {
				return true
			}
		}
	}
	return false
}
