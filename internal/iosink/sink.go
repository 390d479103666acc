// Package iosink implements sink.Sink on top of GORM and the PostgreSQL
// connection pool of db.Operator.
package iosink

import (
	"context"
	"fmt"

	"github.com/lucabelezal/pokedex-bff-sub000/internal/iodb"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/db"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/schema"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/sink"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormSink struct {
	db *gorm.DB

	// op is nil for sinks that live inside a transaction.
	op db.Operator
}

// New creates a GORM Sink over a connected operator. Closing the Sink
// closes the operator.
func New(op db.Operator) (sink.Sink, error) {
	gdb, err := iodb.GORM(op)
	if err != nil {
		return nil, err
	}
	return &gormSink{db: gdb, op: op}, nil
}

// FindAll loads entities with their direct associations.
func (s *gormSink) FindAll(ctx context.Context, dest any) error {
	_, _, kind, err := sink.Target(dest)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).
		Preload(clause.Associations).
		Order("id").
		Find(dest).Error
	if err != nil {
		return fmt.Errorf("cannot load %s: %w", kind, err)
	}
	return nil
}

// Save upserts the entity. Many-to-many associations get their join rows
// inserted; existing join rows are kept.
func (s *gormSink) Save(ctx context.Context, entity schema.Entity) error {
	err := s.db.WithContext(ctx).Save(entity).Error
	if err != nil {
		return fmt.Errorf("cannot save %s %s: %w",
			entity.TableName(), entity.Key(), err)
	}
	return nil
}

func (s *gormSink) Count(
	ctx context.Context,
	model schema.Entity,
) (int64, error) {
	var res int64
	err := s.db.WithContext(ctx).Model(model).Count(&res).Error
	if err != nil {
		return 0, fmt.Errorf("cannot count %s: %w", model.TableName(), err)
	}
	return res, nil
}

func (s *gormSink) Transaction(
	ctx context.Context,
	fn func(tx sink.Sink) error,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSink{db: tx})
	})
}

func (s *gormSink) Close() error {
	if s.op == nil {
		return nil
	}
	return s.op.Close()
}
