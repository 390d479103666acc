package iodb

import (
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/db"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GORM opens a GORM session on top of the operator's pool. The session
// shares connections with the pool and does not need to be closed
// separately.
func GORM(op db.Operator) (*gorm.DB, error) {
	pool := op.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	res, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}
	return res, nil
}
