package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a pgvector testcontainer.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	// Use shared test database setup
	entClient, db := util.SetupTestDatabase(t)

	// Get the driver for the raw-SQL migration hooks
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Vector columns live outside the ent schema; add them plus the
	// vector and partial unique indexes the kernel relies on.
	err := database.CreateVectorColumns(ctx, drv)
	require.NoError(t, err)
	err = database.CreateVectorIndexes(ctx, drv)
	require.NoError(t, err)
	err = database.CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	// Wrap in our client type
	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	client := database.NewClientFromEnt(entClient, db)

	return client
}
