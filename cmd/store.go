package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodb"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/ioschema"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iosink"
	"github.com/lucabelezal/pokedex-bff-sub000/internal/iosqlite"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
)

// openSink opens the store selected by database.driver. A PostgreSQL
// database without tables gets the schema created first.
func openSink(ctx context.Context, cfg *config.Config) (sink.Sink, error) {
	if cfg.Database.Driver == "sqlite" {
		path := cfg.SQLiteFilePath()
		gn.Info("Using SQLite snapshot <em>%s</em>", path)
		return iosqlite.Open(ctx, path)
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	gn.Info("Connected to database: %s@%s:%d/%s",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		_ = op.Close()
		return nil, err
	}
	if !hasTables {
		gn.Info("Database has no tables, creating schema...")
		if err = ioschema.NewManager(op).Create(ctx, cfg); err != nil {
			_ = op.Close()
			return nil, err
		}
	}

	snk, err := iosink.New(op)
	if err != nil {
		_ = op.Close()
		return nil, err
	}
	return snk, nil
}

// confirm asks a yes/no question and reads the answer from r.
func confirm(r io.Reader, question string) (bool, error) {
	fmt.Printf("\n%s (yes/no): ", question)

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
