package main

import (
	"context"
	"fmt"

	"github.com/MarkoPoloResearchLab/creditledger/internal/config"
	"github.com/MarkoPoloResearchLab/creditledger/internal/migrations"
	"github.com/MarkoPoloResearchLab/creditledger/internal/reconcile"
	"github.com/MarkoPoloResearchLab/creditledger/internal/store/gormstore"
	"github.com/MarkoPoloResearchLab/creditledger/internal/store/pgstore"
	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// backend bundles the selected store with the handles that must be closed.
// pool is set whenever the database is Postgres and a pool was requested.
type backend struct {
	store   ledger.Store
	pool    *pgxpool.Pool
	closers []func()
}

func (backend *backend) close() {
	for index := len(backend.closers) - 1; index >= 0; index-- {
		backend.closers[index]()
	}
}

func openBackend(ctx context.Context, cfg *config.Config, needPool bool) (*backend, error) {
	driver, sqlitePath, err := config.ResolveDriver(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	opened := &backend{}

	if driver == config.DriverPostgres && (cfg.StoreBackend == config.StorePGX || needPool) {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("pgx pool: %w", err)
		}
		opened.pool = pool
		opened.closers = append(opened.closers, pool.Close)
		if err := migrations.Up(stdlib.OpenDBFromPool(pool)); err != nil {
			opened.close()
			return nil, err
		}
		if needPool {
			if err := reconcile.Migrate(ctx, pool); err != nil {
				opened.close()
				return nil, err
			}
		}
	}

	if cfg.StoreBackend == config.StorePGX {
		opened.store = pgstore.New(opened.pool)
		return opened, nil
	}

	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	var db *gorm.DB
	switch driver {
	case config.DriverPostgres:
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	case config.DriverSQLite:
		db, err = gorm.Open(sqlite.Open(sqlitePath), gormConfig)
	default:
		err = fmt.Errorf("unsupported database scheme %q", driver)
	}
	if err != nil {
		opened.close()
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		opened.close()
		return nil, err
	}
	opened.closers = append(opened.closers, func() { _ = sqlDB.Close() })

	switch {
	case driver == config.DriverSQLite:
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
		if err := gormstore.AutoMigrate(db); err != nil {
			opened.close()
			return nil, err
		}
	case opened.pool == nil:
		if err := migrations.Up(sqlDB); err != nil {
			opened.close()
			return nil, err
		}
	}
	opened.store = gormstore.New(db)
	return opened, nil
}
