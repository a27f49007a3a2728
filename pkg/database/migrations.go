package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateVectorColumns adds the nullable vector(1536) columns that Ent does
// not map (tasks, playbook_entries, learned_patterns). The non-null
// task_memories.context_embedding column is Ent-managed via field.Other.
// Used by the test helpers after ent's Schema.Create; production schemas get
// these from the SQL migrations.
func CreateVectorColumns(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	stmts := []string{
		`ALTER TABLE tasks ADD COLUMN IF NOT EXISTS embedding vector(1536)`,
		`ALTER TABLE playbook_entries ADD COLUMN IF NOT EXISTS embedding vector(1536)`,
		`ALTER TABLE learned_patterns ADD COLUMN IF NOT EXISTS embedding vector(1536)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add vector column: %w", err)
		}
	}
	return nil
}

// CreateVectorIndexes creates the approximate-nearest-neighbor indexes for
// cosine KNN queries. IVFFlat over vector_cosine_ops matches the
// `embedding <=> $1` operator used by pkg/dedup and pkg/ace.
//
// IVFFlat indexes built on empty tables degrade to sequential scans until
// populated; that is acceptable — the dedup fallback path covers cold starts.
func CreateVectorIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_tasks_embedding_cosine
		ON tasks USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`,
		`CREATE INDEX IF NOT EXISTS idx_task_memories_embedding_cosine
		ON task_memories USING ivfflat (context_embedding vector_cosine_ops) WITH (lists = 100)`,
		`CREATE INDEX IF NOT EXISTS idx_playbook_entries_embedding_cosine
		ON playbook_entries USING ivfflat (embedding vector_cosine_ops) WITH (lists = 100)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create vector index: %w", err)
		}
	}
	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in the initial
// migration.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one unreleased lock per name.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS resource_locks_name_active
		ON resource_locks (name)
		WHERE released_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create active lock index: %w", err)
	}

	return nil
}
