package migrations_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"tms/internal/adapters/out/postgres"
	"tms/internal/adapters/out/postgres/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var tables = []string{"customers", "equipment", "drivers", "loads", "invoices"}

func TestMigrations_UpAndReset(t *testing.T) {
	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("migrations"),
		tcpostgres.WithUsername("tms"),
		tcpostgres.WithPassword("tms"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := postgres.OpenSQL(ctx, dsn, postgres.PoolConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := migrations.Up(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)
	for _, table := range tables {
		assert.True(t, tableExists(t, db, table), "expected table %q", table)
	}

	version, err = migrations.Up(ctx, db)
	require.NoError(t, err, "second Up is a no-op")
	assert.Equal(t, int64(4), version)

	require.NoError(t, migrations.Reset(ctx, db))
	for _, table := range tables {
		assert.False(t, tableExists(t, db, table), "expected table %q to be dropped", table)
	}
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	require.NoError(t, db.QueryRowContext(context.Background(), q, table).Scan(&exists))
	return exists
}
