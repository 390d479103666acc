// Package iosqlite implements sink.Sink as an embedded SQLite snapshot:
// every entity is kept as one JSON payload keyed by its kind and primary
// key. It needs no server and is used with `database.driver: sqlite`.
package iosqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const createTable = `CREATE TABLE IF NOT EXISTS entities (
	kind    TEXT NOT NULL,
	key     TEXT NOT NULL,
	payload BLOB NOT NULL,
	PRIMARY KEY (kind, key)
)`

const upsert = `INSERT INTO entities (kind, key, payload) VALUES (?, ?, ?)
ON CONFLICT (kind, key) DO UPDATE SET payload = excluded.payload`

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, q string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, q string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, q string, args ...any) *sql.Row
}

type store struct {
	db *sql.DB
	q  querier
	tx bool
}

// Open opens (and creates if needed) the snapshot file at path.
func Open(ctx context.Context, path string) (sink.Sink, error) {
	if dir := filepath.Dir(path); dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil && !errors.Is(err, os.ErrExist) {
			return nil, OpenError(path, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}

	// Single connection for SQLite to avoid locking issues.
	db.SetMaxOpenConns(1)

	stmts := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		createTable,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, OpenError(path, err)
		}
	}

	return &store{db: db, q: db}, nil
}

// Reset removes all stored entities.
func Reset(ctx context.Context, snk sink.Sink) error {
	s, ok := snk.(*store)
	if !ok {
		return fmt.Errorf("not a sqlite sink: %T", snk)
	}
	_, err := s.q.ExecContext(ctx, "DELETE FROM entities")
	return err
}

func (s *store) FindAll(ctx context.Context, dest any) error {
	slice, elem, kind, err := sink.Target(dest)
	if err != nil {
		return err
	}

	rows, err := s.q.QueryContext(ctx,
		"SELECT payload FROM entities WHERE kind = ? ORDER BY rowid", kind)
	if err != nil {
		return fmt.Errorf("cannot load %s: %w", kind, err)
	}
	defer func() { _ = rows.Close() }()

	res := reflect.MakeSlice(slice.Type(), 0, 0)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return fmt.Errorf("cannot scan %s: %w", kind, err)
		}
		item := reflect.New(elem)
		if err := json.Unmarshal(payload, item.Interface()); err != nil {
			return fmt.Errorf("cannot decode %s: %w", kind, err)
		}
		res = reflect.Append(res, item.Elem())
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("cannot load %s: %w", kind, err)
	}

	slice.Set(res)
	return nil
}

func (s *store) Save(ctx context.Context, entity schema.Entity) error {
	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("cannot encode %s %s: %w",
			entity.TableName(), entity.Key(), err)
	}
	_, err = s.q.ExecContext(ctx, upsert,
		entity.TableName(), entity.Key(), payload)
	if err != nil {
		return fmt.Errorf("cannot save %s %s: %w",
			entity.TableName(), entity.Key(), err)
	}
	return nil
}

func (s *store) Count(
	ctx context.Context,
	model schema.Entity,
) (int64, error) {
	var res int64
	err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM entities WHERE kind = ?", model.TableName(),
	).Scan(&res)
	if err != nil {
		return 0, fmt.Errorf("cannot count %s: %w", model.TableName(), err)
	}
	return res, nil
}

// Transaction commits writes of fn only when it returns nil. Nested calls
// join the outer transaction.
func (s *store) Transaction(
	ctx context.Context,
	fn func(tx sink.Sink) error,
) error {
	if s.tx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cannot begin transaction: %w", err)
	}
	if err := fn(&store{db: s.db, q: tx, tx: true}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cannot commit transaction: %w", err)
	}
	return nil
}

func (s *store) Close() error {
	if s.tx {
		return nil
	}
	return s.db.Close()
}
