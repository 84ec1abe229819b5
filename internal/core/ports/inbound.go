package ports

import (
	"context"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, upload domain.DocumentUpload) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous document processing.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}

// SearchService is the inbound contract for retrieval over indexed chunks.
type SearchService interface {
	Semantic(ctx context.Context, query string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error)
	Hybrid(ctx context.Context, query string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error)
}

// ChatService is the inbound contract for the grounded consultant chat.
type ChatService interface {
	Chat(ctx context.Context, req domain.ChatRequest) (*domain.Answer, error)
}

// AssessmentService scores a questionnaire submission and persists the snapshot.
type AssessmentService interface {
	Submit(ctx context.Context, resp domain.AssessmentResponse) (*domain.AssessmentResult, error)
}

// PromptAdmin is the inbound contract for the prompt template admin surface.
type PromptAdmin interface {
	Get(ctx context.Context, name string) (*domain.Prompt, error)
	Update(ctx context.Context, name, content string) (*domain.Prompt, error)
}
