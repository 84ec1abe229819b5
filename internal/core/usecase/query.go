package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
)

const (
	defaultSearchThreshold = 0.7
	defaultSearchLimit     = 5
)

type SearchUseCase struct {
	embedder ports.Embedder
	chunks   ports.ChunkStore
}

func NewSearchUseCase(embedder ports.Embedder, chunks ports.ChunkStore) *SearchUseCase {
	return &SearchUseCase{
		embedder: embedder,
		chunks:   chunks,
	}
}

func (uc *SearchUseCase) Semantic(ctx context.Context, query string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "semantic search", fmt.Errorf("query is empty"))
	}

	queryVector, err := uc.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := uc.chunks.Search(ctx, queryVector, applySearchDefaults(filter))
	if err != nil {
		return nil, fmt.Errorf("search chunks: %w", err)
	}
	return results, nil
}

func (uc *SearchUseCase) Hybrid(ctx context.Context, query string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "hybrid search", fmt.Errorf("query is empty"))
	}

	queryVector, err := uc.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := uc.chunks.HybridSearch(ctx, queryVector, extractKeywords(query), applySearchDefaults(filter))
	if err != nil {
		return nil, fmt.Errorf("hybrid search chunks: %w", err)
	}
	return results, nil
}

func applySearchDefaults(filter domain.SearchFilter) domain.SearchFilter {
	if filter.Threshold <= 0 {
		filter.Threshold = defaultSearchThreshold
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	return filter
}
