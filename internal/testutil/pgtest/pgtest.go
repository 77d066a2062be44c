// Package pgtest starts a throwaway Postgres for integration suites and
// applies the goose migrations to it.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"tms/internal/adapters/out/postgres"
	"tms/internal/adapters/out/postgres/migrations"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Tables lists every migrated table, children first.
var Tables = []string{"invoices", "loads", "drivers", "equipment", "customers"}

type Database struct {
	Container *tcpostgres.PostgresContainer
	SQL       *sql.DB
	Gorm      *gorm.DB
}

// Start runs postgres:15-alpine and migrates it to the latest version.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("tms_test"),
		tcpostgres.WithUsername("tms"),
		tcpostgres.WithPassword("tms"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	db := &Database{Container: container}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("connection string: %w", err)
	}

	if db.SQL, err = postgres.OpenSQL(ctx, dsn, postgres.PoolConfig{}); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	if _, err = migrations.Up(ctx, db.SQL); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	if db.Gorm, err = postgres.OpenGorm(db.SQL); err != nil {
		_ = db.Close(ctx)
		return nil, err
	}

	return db, nil
}

// Truncate empties every table.
func (d *Database) Truncate(ctx context.Context) error {
	_, err := d.SQL.ExecContext(ctx, "TRUNCATE TABLE "+strings.Join(Tables, ", ")+" CASCADE")
	return err
}

func (d *Database) Close(ctx context.Context) error {
	if d.SQL != nil {
		_ = d.SQL.Close()
	}
	if d.Container != nil {
		return d.Container.Terminate(ctx)
	}
	return nil
}
