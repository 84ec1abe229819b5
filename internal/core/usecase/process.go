package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
)

type ProcessDocumentUseCase struct {
	repo      ports.DocumentRepository
	extractor ports.TextExtractor
	chunker   ports.Chunker
	embedder  ports.Embedder
	chunks    ports.ChunkStore
}

func NewProcessDocumentUseCase(
	repo ports.DocumentRepository,
	extractor ports.TextExtractor,
	chunker ports.Chunker,
	embedder ports.Embedder,
	chunks ports.ChunkStore,
) *ProcessDocumentUseCase {
	return &ProcessDocumentUseCase{
		repo:      repo,
		extractor: extractor,
		chunker:   chunker,
		embedder:  embedder,
		chunks:    chunks,
	}
}

func (uc *ProcessDocumentUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusProcessing, "", 0); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	chunkCount, err := uc.processPipeline(ctx, documentID)
	if err != nil {
		if failErr := uc.markFailed(ctx, documentID, err); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusCompleted, "", chunkCount); err != nil {
		return fmt.Errorf("set status=completed: %w", err)
	}
	return nil
}

func (uc *ProcessDocumentUseCase) processPipeline(ctx context.Context, documentID string) (int, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return 0, fmt.Errorf("fetch document by id: %w", err)
	}

	text, err := uc.extractText(ctx, doc)
	if err != nil {
		return 0, err
	}

	slices := uc.chunker.Split(text)
	if len(slices) == 0 {
		return 0, domain.WrapError(domain.ErrInvalidInput, "chunk document", errors.New("chunking produced zero chunks"))
	}

	chunks := uc.embedChunks(ctx, doc, slices)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("embed chunks: all %d chunk embeddings failed", len(slices))
	}

	if err := uc.chunks.InsertChunks(ctx, chunks); err != nil {
		return 0, fmt.Errorf("persist chunks: %w", err)
	}
	return len(chunks), nil
}

func (uc *ProcessDocumentUseCase) extractText(ctx context.Context, doc *domain.Document) (string, error) {
	text, err := uc.extractor.Extract(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	if text == "" {
		return "", domain.WrapError(domain.ErrInvalidInput, "extract text", errors.New("empty extracted text"))
	}
	return text, nil
}

// embedChunks embeds one chunk per call; the embedder enforces its own rate
// limit. A chunk whose embedding call fails is logged and skipped so the rest
// of the document still becomes searchable.
func (uc *ProcessDocumentUseCase) embedChunks(ctx context.Context, doc *domain.Document, slices []domain.TextChunk) []domain.DocumentChunk {
	now := time.Now().UTC()
	out := make([]domain.DocumentChunk, 0, len(slices))

	for i, slice := range slices {
		vector, err := uc.embedder.EmbedChunk(ctx, slice.Text)
		if err != nil {
			slog.Warn("chunk_embedding_skipped",
				"document_id", doc.ID,
				"chunk_index", i,
				"error", err,
			)
			continue
		}
		out = append(out, domain.DocumentChunk{
			ID:         uuid.NewString(),
			DocumentID: doc.ID,
			Index:      i,
			Text:       slice.Text,
			TokenCount: slice.TokenCount,
			Keywords:   extractKeywords(slice.Text),
			Entities:   extractEntities(slice.Text),
			Embedding:  vector,
			CreatedAt:  now,
		})
	}
	return out
}

func (uc *ProcessDocumentUseCase) markFailed(ctx context.Context, documentID string, processErr error) error {
	if processErr == nil {
		return nil
	}
	return uc.repo.UpdateStatus(ctx, documentID, domain.StatusFailed, processErr.Error(), 0)
}
