package cmd

import (
	"context"
	"log/slog"
	"time"

	"tms/internal/adapters/out/memory"
	"tms/internal/adapters/out/postgres"
	"tms/internal/adapters/out/postgres/migrations"
	"tms/internal/core/ports"
)

// OpenStore builds the unit of work factory selected by STORE. The postgres
// store is migrated to the latest schema before use.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (ports.UnitOfWorkFactory, func() error, error) {
	if cfg.Store == StoreMemory {
		logger.Warn("Using the in-memory store; data is lost on exit")
		return memory.NewUnitOfWorkFactory(memory.NewStore()), func() error { return nil }, nil
	}

	sqlDB, err := postgres.OpenSQL(ctx, cfg.DSN(), postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return nil, nil, err
	}

	version, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}
	logger.Info("Database schema is up to date", "version", version)

	gormDB, err := postgres.OpenGorm(sqlDB)
	if err != nil {
		_ = sqlDB.Close()
		return nil, nil, err
	}

	return postgres.NewGormUnitOfWorkFactory(gormDB), sqlDB.Close, nil
}

// Migrate applies pending migrations and reports the resulting version.
func Migrate(ctx context.Context, cfg Config) (int64, error) {
	sqlDB, err := postgres.OpenSQL(ctx, cfg.DSN(), postgres.PoolConfig{MaxOpenConns: 1})
	if err != nil {
		return 0, err
	}
	defer sqlDB.Close()

	return migrations.Up(ctx, sqlDB)
}
