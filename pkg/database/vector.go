package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// Vector query helpers for the columns Ent does not map. All similarity
// queries use pgvector cosine distance: similarity = 1 - (embedding <=> $1).
// Rows with NULL embeddings never match (the <=> operator yields NULL, which
// fails the threshold comparison).

// Neighbor is one row returned by a KNN query: the row's primary key and
// its cosine similarity to the probe vector.
type Neighbor struct {
	ID         string
	Similarity float64
}

// TaskEmbedding is a raw (id, vector) pair for the in-process fallback scan.
type TaskEmbedding struct {
	TaskID    string
	Embedding []float32
}

// TaskVectorScope narrows a task vector query. Zero-value fields are not
// filtered on.
type TaskVectorScope struct {
	TicketID string
	TaskType string
	Statuses []string
}

func (s TaskVectorScope) where(args *[]any) []string {
	clauses := []string{"embedding IS NOT NULL"}
	if s.TicketID != "" {
		*args = append(*args, s.TicketID)
		clauses = append(clauses, fmt.Sprintf("ticket_id = $%d", len(*args)))
	}
	if s.TaskType != "" {
		*args = append(*args, s.TaskType)
		clauses = append(clauses, fmt.Sprintf("task_type = $%d", len(*args)))
	}
	if len(s.Statuses) > 0 {
		placeholders := make([]string, len(s.Statuses))
		for i, status := range s.Statuses {
			*args = append(*args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(*args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}
	return clauses
}

// SetTaskEmbedding writes a task's dedup embedding.
func SetTaskEmbedding(ctx context.Context, db *stdsql.DB, taskID string, embedding []float32) error {
	_, err := db.ExecContext(ctx,
		`UPDATE tasks SET embedding = $1 WHERE task_id = $2`,
		pgvector.NewVector(embedding), taskID)
	if err != nil {
		return fmt.Errorf("failed to set task embedding: %w", err)
	}
	return nil
}

// SearchTaskNeighbors returns the top-K most similar in-scope tasks with
// similarity >= minSimilarity, ordered by similarity descending.
func SearchTaskNeighbors(ctx context.Context, db *stdsql.DB, embedding []float32, scope TaskVectorScope, minSimilarity float64, limit int) ([]Neighbor, error) {
	args := []any{pgvector.NewVector(embedding)}
	clauses := scope.where(&args)

	args = append(args, minSimilarity)
	clauses = append(clauses, fmt.Sprintf("(1 - (embedding <=> $1)) >= $%d", len(args)))

	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT task_id, (1 - (embedding <=> $1)) AS similarity
		FROM tasks
		WHERE %s
		ORDER BY embedding <=> $1
		LIMIT $%d`,
		strings.Join(clauses, " AND "), len(args))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("task vector search failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var neighbors []Neighbor
	for rows.Next() {
		var n Neighbor
		if err := rows.Scan(&n.ID, &n.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan task neighbor: %w", err)
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, rows.Err()
}

// ListTaskEmbeddings returns all in-scope (task_id, embedding) pairs for the
// in-process cosine fallback. O(n) in the scope size; callers only use this
// when the index query fails.
func ListTaskEmbeddings(ctx context.Context, db *stdsql.DB, scope TaskVectorScope) ([]TaskEmbedding, error) {
	var args []any
	clauses := scope.where(&args)

	query := fmt.Sprintf(
		`SELECT task_id, embedding FROM tasks WHERE %s`,
		strings.Join(clauses, " AND "))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("task embedding scan failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []TaskEmbedding
	for rows.Next() {
		var id string
		var vec pgvector.Vector
		if err := rows.Scan(&id, &vec); err != nil {
			return nil, fmt.Errorf("failed to scan task embedding: %w", err)
		}
		out = append(out, TaskEmbedding{TaskID: id, Embedding: vec.Slice()})
	}
	return out, rows.Err()
}

// PlaybookNeighbor is one playbook entry returned by a KNN query.
type PlaybookNeighbor struct {
	EntryID    string
	Content    string
	Similarity float64
}

// SetPlaybookEntryEmbedding writes a playbook entry's embedding.
func SetPlaybookEntryEmbedding(ctx context.Context, db *stdsql.DB, entryID string, embedding []float32) error {
	_, err := db.ExecContext(ctx,
		`UPDATE playbook_entries SET embedding = $1 WHERE entry_id = $2`,
		pgvector.NewVector(embedding), entryID)
	if err != nil {
		return fmt.Errorf("failed to set playbook embedding: %w", err)
	}
	return nil
}

// SearchPlaybookNeighbors returns the top-K most similar active playbook
// entries for a ticket with similarity >= minSimilarity.
func SearchPlaybookNeighbors(ctx context.Context, db *stdsql.DB, embedding []float32, ticketID string, minSimilarity float64, limit int) ([]PlaybookNeighbor, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT entry_id, content, (1 - (embedding <=> $1)) AS similarity
		FROM playbook_entries
		WHERE embedding IS NOT NULL
		  AND ticket_id = $2
		  AND is_active
		  AND (1 - (embedding <=> $1)) >= $3
		ORDER BY embedding <=> $1
		LIMIT $4`,
		pgvector.NewVector(embedding), ticketID, minSimilarity, limit)
	if err != nil {
		return nil, fmt.Errorf("playbook vector search failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var neighbors []PlaybookNeighbor
	for rows.Next() {
		var n PlaybookNeighbor
		if err := rows.Scan(&n.EntryID, &n.Content, &n.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan playbook neighbor: %w", err)
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, rows.Err()
}

// SearchMemoryNeighbors returns the most similar task memories across the
// given task ids (pass nil to search all memories).
func SearchMemoryNeighbors(ctx context.Context, db *stdsql.DB, embedding []float32, taskIDs []string, minSimilarity float64, limit int) ([]Neighbor, error) {
	args := []any{pgvector.NewVector(embedding), minSimilarity}
	clause := ""
	if len(taskIDs) > 0 {
		placeholders := make([]string, len(taskIDs))
		for i, id := range taskIDs {
			args = append(args, id)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clause = fmt.Sprintf("AND task_id IN (%s)", strings.Join(placeholders, ", "))
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT memory_id, (1 - (context_embedding <=> $1)) AS similarity
		FROM task_memories
		WHERE (1 - (context_embedding <=> $1)) >= $2 %s
		ORDER BY context_embedding <=> $1
		LIMIT $%d`, clause, len(args))

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("memory vector search failed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var neighbors []Neighbor
	for rows.Next() {
		var n Neighbor
		if err := rows.Scan(&n.ID, &n.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan memory neighbor: %w", err)
		}
		neighbors = append(neighbors, n)
	}
	return neighbors, rows.Err()
}
