package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pgvector/pgvector-go"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

// Blending weights forwarded to hybrid_search_documents. The score
// combination itself happens inside the procedure.
const (
	semanticWeight     = 0.7
	keywordBoostWeight = 0.3
)

type ChunkStore struct {
	db *sql.DB
}

func NewChunkStore(db *sql.DB) *ChunkStore {
	return &ChunkStore{db: db}
}

// InsertChunks writes all chunks of a document in one transaction, so a
// partially indexed document never becomes visible to search.
func (s *ChunkStore) InsertChunks(ctx context.Context, chunks []domain.DocumentChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin chunk tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
INSERT INTO document_chunks (
	id, document_id, chunk_index, content, token_count, keywords, entities, embedding, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`
	for _, chunk := range chunks {
		_, err := tx.ExecContext(ctx, query,
			chunk.ID, chunk.DocumentID, chunk.Index, chunk.Text, chunk.TokenCount,
			chunk.Keywords, chunk.Entities, pgvector.NewVector(chunk.Embedding), chunk.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert chunk %d of document %s: %w", chunk.Index, chunk.DocumentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit chunk tx: %w", err)
	}
	return nil
}

func (s *ChunkStore) Search(ctx context.Context, queryVector []float32, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT chunk_id, document_id, title, filename, doc_type, content, chunk_index, similarity
FROM search_documents($1, $2, $3, $4, $5)
`,
		pgvector.NewVector(queryVector), filter.Threshold, filter.Limit,
		nullIfEmpty(filter.CompanyContext), nullIfEmpty(string(filter.DocumentType)),
	)
	if err != nil {
		return nil, fmt.Errorf("call search_documents: %w", err)
	}
	defer rows.Close()

	return scanRetrievedChunks(rows)
}

func (s *ChunkStore) HybridSearch(ctx context.Context, queryVector []float32, keywords []string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT chunk_id, document_id, title, filename, doc_type, content, chunk_index, similarity
FROM hybrid_search_documents($1, $2, $3, $4, $5, $6, $7, $8)
`,
		pgvector.NewVector(queryVector), keywords, filter.Threshold, filter.Limit,
		nullIfEmpty(filter.CompanyContext), nullIfEmpty(string(filter.DocumentType)),
		semanticWeight, keywordBoostWeight,
	)
	if err != nil {
		return nil, fmt.Errorf("call hybrid_search_documents: %w", err)
	}
	defer rows.Close()

	return scanRetrievedChunks(rows)
}

func scanRetrievedChunks(rows *sql.Rows) ([]domain.RetrievedChunk, error) {
	out := make([]domain.RetrievedChunk, 0, 8)
	for rows.Next() {
		var chunk domain.RetrievedChunk
		var docType string
		err := rows.Scan(
			&chunk.ChunkID, &chunk.DocumentID, &chunk.Title, &chunk.Filename,
			&docType, &chunk.Text, &chunk.ChunkIndex, &chunk.Similarity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan retrieved chunk: %w", err)
		}
		chunk.DocumentType = domain.DocumentType(docType)
		out = append(out, chunk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retrieved chunks: %w", err)
	}
	return out, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
