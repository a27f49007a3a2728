package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL + pgvector.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	// Check if we're in CI with an external database
	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
		// CI mode: use external PostgreSQL service container
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		// Local dev mode: use testcontainers. The pgvector image ships the
		// vector extension the schema needs.
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"pgvector/pgvector:pg17",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		// Get connection string from container
		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	// Open database connection using pgx driver
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	// Configure connection pool for tests
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	// The extension must exist before Schema.Create touches the vector-typed
	// task_memories.context_embedding column.
	_, err = db.ExecContext(ctx, "CREATE EXTENSION IF NOT EXISTS vector")
	require.NoError(t, err)

	// Create Ent driver from existing database connection
	// Use dialect.Postgres for Ent compatibility while pgx handles the actual connection
	drv := entsql.OpenDB(dialect.Postgres, db)

	// Create Ent client
	entClient := ent.NewClient(ent.Driver(drv))

	// Run migrations (auto-migration for tests)
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	// Raw-SQL schema objects Ent does not manage
	require.NoError(t, CreateVectorColumns(ctx, drv))
	require.NoError(t, CreateVectorIndexes(ctx, drv))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))

	// Wrap in our client type
	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

// axisVector returns a 1536-dim unit vector along the given axis. Cosine
// similarity between distinct axes is exactly 0, which makes ordering
// assertions deterministic.
func axisVector(axis int) []float32 {
	vec := make([]float32, 1536)
	vec[axis] = 1
	return vec
}

func TestTaskVectorSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Ticket.Create().
		SetID("TICKET-1").
		SetTitle("Checkout flow").
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(ctx)
	require.NoError(t, err)

	for _, id := range []string{"task-a", "task-b", "task-c"} {
		_, err := client.Task.Create().
			SetID(id).
			SetTicketID("TICKET-1").
			SetPhaseID("PHASE_IMPLEMENTATION").
			SetDescription("Implement JWT middleware for " + id).
			Save(ctx)
		require.NoError(t, err)
	}

	// task-a and task-b on orthogonal axes, task-c in between
	// (cos(c,a) = 0.8, cos(c,b) = 0.6).
	mixed := make([]float32, 1536)
	mixed[0] = 0.8
	mixed[1] = 0.6

	require.NoError(t, SetTaskEmbedding(ctx, client.DB(), "task-a", axisVector(0)))
	require.NoError(t, SetTaskEmbedding(ctx, client.DB(), "task-b", axisVector(1)))
	require.NoError(t, SetTaskEmbedding(ctx, client.DB(), "task-c", mixed))

	scope := TaskVectorScope{TicketID: "TICKET-1", Statuses: []string{"pending"}}

	// Probe along axis 0: task-a exact match, task-c partial, task-b excluded.
	neighbors, err := SearchTaskNeighbors(ctx, client.DB(), axisVector(0), scope, 0.5, 5)
	require.NoError(t, err)
	require.Len(t, neighbors, 2)
	assert.Equal(t, "task-a", neighbors[0].ID)
	assert.InDelta(t, 1.0, neighbors[0].Similarity, 0.001)
	assert.Equal(t, "task-c", neighbors[1].ID)
	assert.InDelta(t, 0.8, neighbors[1].Similarity, 0.001)

	// Tighter threshold drops the partial match.
	neighbors, err = SearchTaskNeighbors(ctx, client.DB(), axisVector(0), scope, 0.9, 5)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, "task-a", neighbors[0].ID)

	// Scope filters: a different ticket sees nothing.
	neighbors, err = SearchTaskNeighbors(ctx, client.DB(), axisVector(0),
		TaskVectorScope{TicketID: "TICKET-2"}, 0.5, 5)
	require.NoError(t, err)
	assert.Empty(t, neighbors)

	// Fallback scan returns every stored embedding in scope.
	embeddings, err := ListTaskEmbeddings(ctx, client.DB(), TaskVectorScope{TicketID: "TICKET-1"})
	require.NoError(t, err)
	require.Len(t, embeddings, 3)
	for _, e := range embeddings {
		assert.Len(t, e.Embedding, 1536)
	}
}

func TestResourceLockActiveUnique(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.ResourceLock.Create().
		SetID("lock-1").
		SetName("repo:acme/api").
		SetOwnerAgentID("agent-1").
		Save(ctx)
	require.NoError(t, err)

	// Second unreleased lock on the same name must violate the partial
	// unique index.
	_, err = client.ResourceLock.Create().
		SetID("lock-2").
		SetName("repo:acme/api").
		SetOwnerAgentID("agent-2").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// Releasing the first lock frees the name.
	_, err = client.ResourceLock.UpdateOneID("lock-1").
		SetReleasedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ResourceLock.Create().
		SetID("lock-2").
		SetName("repo:acme/api").
		SetOwnerAgentID("agent-2").
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config with defaults",
			envVars: map[string]string{
				"DB_PASSWORD": "test",
			},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_MAX_IDLE_CONNS",
			envVars: map[string]string{
				"DB_MAX_IDLE_CONNS": "abc123",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name: "invalid DB_CONN_MAX_IDLE_TIME",
			envVars: map[string]string{
				"DB_CONN_MAX_IDLE_TIME": "not_a_duration",
				"DB_PASSWORD":           "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name: "missing password",
			envVars: map[string]string{
				"DB_PASSWORD": "",
			},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear all DB-related env vars
			envKeys := []string{
				"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
				"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
				"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
			}
			for _, key := range envKeys {
				os.Unsetenv(key)
			}

			// Set test env vars
			for key, val := range tt.envVars {
				if val != "" {
					os.Setenv(key, val)
				}
			}

			// Cleanup after test
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			// Test LoadConfigFromEnv
			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
				// Verify defaults are applied
				if tt.name == "valid config with defaults" {
					assert.Equal(t, "localhost", cfg.Host)
					assert.Equal(t, 5432, cfg.Port)
					assert.Equal(t, 25, cfg.MaxOpenConns)
					assert.Equal(t, 10, cfg.MaxIdleConns)
				}
			}
		})
	}
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Get health status
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	// Verify response time is in milliseconds (can be 0 for very fast local pings)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0), "response time should be non-negative")
	assert.Less(t, health.ResponseTime, int64(1000), "response time should be less than 1 second for a local ping")

	// Marshal to JSON to verify the output format
	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	// Parse JSON to verify millisecond values
	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	// Verify response_time_ms is a number (not a huge nanosecond value)
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0), "response_time_ms should be non-negative")
	// If this were nanoseconds, it would be > 1,000,000 (1ms in nanoseconds)
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")

	// Verify wait_duration_ms is present and is a number
	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0), "wait_duration_ms should be non-negative")
	assert.Less(t, waitDuration, float64(1000000), "wait_duration_ms should be in milliseconds, not nanoseconds")

	t.Logf("Health JSON: %s", string(jsonBytes))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				SSLMode:      "disable",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "",
				Database:     "test",
				MaxOpenConns: 10,
				MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 5,
				MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 0,
				MaxIdleConns: 0,
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				Host:         "localhost",
				Port:         5432,
				User:         "test",
				Password:     "test",
				Database:     "test",
				MaxOpenConns: 10,
				MaxIdleConns: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
