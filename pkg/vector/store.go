// Package vector provides the derived cosine-similarity index used for
// candidate retrieval. The authoritative vectors live in the relational
// embeddings table; this index is rebuildable from them.
package vector

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// Entry is one indexed vector with its metadata and an optional document
// excerpt for debugging.
type Entry struct {
	ID       string
	Vector   []float32
	Metadata map[string]interface{}
	Document string
}

// Match is one search hit. Distance is cosine distance (1 - cosine
// similarity), ascending.
type Match struct {
	ID       string
	Distance float64
	Metadata map[string]interface{}
}

// Similarity converts the match distance back to cosine similarity.
func (m Match) Similarity() float64 {
	return 1 - m.Distance
}

// Store is the vector index contract.
type Store interface {
	Upsert(ctx context.Context, entries []Entry) error
	Search(ctx context.Context, query []float32, topK int, where map[string]interface{}) ([]Match, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	Get(ctx context.Context, id string) ([]float32, error)
	Count(ctx context.Context) (int, error)
}

// ErrNotFound is returned by Get for unknown ids.
var ErrNotFound = errors.New("vector: id not found")

// PGStore implements Store on the pgvector vector_index table.
type PGStore struct {
	db *sql.DB
}

// NewPGStore wraps the shared database handle.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

// Upsert writes entries, replacing any existing rows with the same id.
func (s *PGStore) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const q = `INSERT INTO vector_index (id, embedding, metadata, document, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET embedding = EXCLUDED.embedding,
		    metadata = EXCLUDED.metadata,
		    document = EXCLUDED.document,
		    updated_at = now()`

	for _, e := range entries {
		meta := e.Metadata
		if meta == nil {
			meta = map[string]interface{}{}
		}
		metaJSON, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("marshal metadata for %s: %w", e.ID, err)
		}
		if _, err := tx.ExecContext(ctx, q, e.ID, pgvector.NewVector(e.Vector), metaJSON, e.Document); err != nil {
			return fmt.Errorf("upsert %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert: %w", err)
	}
	return nil
}

// Search returns the topK nearest entries by cosine distance, optionally
// restricted to rows whose metadata contains every pair in where.
func (s *PGStore) Search(ctx context.Context, query []float32, topK int, where map[string]interface{}) ([]Match, error) {
	if topK <= 0 {
		return nil, nil
	}

	args := []interface{}{pgvector.NewVector(query)}
	q := `SELECT id, embedding <=> $1 AS distance, metadata FROM vector_index`
	if len(where) > 0 {
		whereJSON, err := json.Marshal(where)
		if err != nil {
			return nil, fmt.Errorf("marshal filter: %w", err)
		}
		q += ` WHERE metadata @> $2`
		args = append(args, whereJSON)
	}
	q += fmt.Sprintf(` ORDER BY distance LIMIT %d`, topK)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var (
			m        Match
			metaJSON []byte
		)
		if err := rows.Scan(&m.ID, &m.Distance, &metaJSON); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		if len(metaJSON) > 0 {
			if err := json.Unmarshal(metaJSON, &m.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata of %s: %w", m.ID, err)
			}
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// DeleteByIDs removes the given entries; unknown ids are ignored.
func (s *PGStore) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	q := fmt.Sprintf(`DELETE FROM vector_index WHERE id IN (%s)`, strings.Join(placeholders, ", "))
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("vector delete: %w", err)
	}
	return nil
}

// Get returns the stored vector for id.
func (s *PGStore) Get(ctx context.Context, id string) ([]float32, error) {
	var v pgvector.Vector
	err := s.db.QueryRowContext(ctx, `SELECT embedding FROM vector_index WHERE id = $1`, id).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("vector get %s: %w", id, err)
	}
	return v.Slice(), nil
}

// Count returns the number of indexed vectors.
func (s *PGStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM vector_index`).Scan(&n); err != nil {
		return 0, fmt.Errorf("vector count: %w", err)
	}
	return n, nil
}

// SourceItemID builds the index id for a source item vector.
func SourceItemID(id int) string {
	return fmt.Sprintf("source_item:%d", id)
}

// TopicSummaryID builds the index id for a topic summary vector.
func TopicSummaryID(topicID int) string {
	return fmt.Sprintf("topic_summary:%d", topicID)
}
