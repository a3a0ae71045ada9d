package database

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateVectorIndexTable creates the pgvector extension and the derived
// vector_index table at the configured dimension. The dimension is deployment
// config (it must match the embedding model), so the DDL lives here rather
// than in a static migration file.
//
// No ANN index is created: pgvector's ivfflat/hnsw indexes cap out below the
// 4096 dimensions the default embedding model produces, so searches run as
// sequential scans over a table that stays small (one row per live vector).
func CreateVectorIndexTable(ctx context.Context, db *sql.DB, dim int) error {
	if dim <= 0 {
		return fmt.Errorf("invalid vector dimension %d", dim)
	}

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	_, err := db.ExecContext(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS vector_index (
			id TEXT PRIMARY KEY,
			embedding vector(%d) NOT NULL,
			metadata JSONB NOT NULL DEFAULT '{}',
			document TEXT,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, dim))
	if err != nil {
		return fmt.Errorf("failed to create vector_index table: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_vector_index_metadata_gin
		ON vector_index USING gin(metadata)`)
	if err != nil {
		return fmt.Errorf("failed to create metadata GIN index: %w", err)
	}

	return nil
}
