package iosqlite

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/errcode"
)

// OpenError is returned when the snapshot file cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open SQLite store at <em>%s</em>

<em>How to fix:</em>
  1. Check that the directory is writable
  2. Change <em>database.sqlite_path</em> in config.yaml`

	return &gn.Error{
		Code: errcode.DBStoreOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to open sqlite store %s: %w", path, err),
	}
}
