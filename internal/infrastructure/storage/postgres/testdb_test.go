package postgres_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/exp/slog"

	"jobtracker/internal/app/server/config"
	"jobtracker/internal/infrastructure/migration"
	"jobtracker/internal/infrastructure/storage/postgres"
)

// newTestStorage starts a throwaway PostgreSQL container, applies the
// project migrations and returns a connected Storage.
func newTestStorage(t *testing.T) *postgres.Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("jobtracker_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	migrations, err := filepath.Abs(filepath.Join("..", "..", "..", "..", "migrations"))
	require.NoError(t, err)

	mg := migration.NewMigration(config.DB{DatabaseURI: dsn, Migrations: migrations}, migration.DefaultEngine, slog.Default())
	require.NoError(t, mg.Up())

	storage, err := postgres.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}
