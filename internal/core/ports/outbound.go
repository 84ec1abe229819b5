package ports

import (
	"context"
	"io"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

// DocumentRepository persists and reads document state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string, chunkCount int) error
	Delete(ctx context.Context, id string) error
}

// ChunkStore persists embedded chunks and runs the hosted similarity search.
// The ranking itself lives in the database's search_documents and
// hybrid_search_documents procedures; this port only shapes calls.
type ChunkStore interface {
	InsertChunks(ctx context.Context, chunks []domain.DocumentChunk) error
	Search(ctx context.Context, queryVector []float32, filter domain.SearchFilter) ([]domain.RetrievedChunk, error)
	HybridSearch(ctx context.Context, queryVector []float32, keywords []string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error)
}

// ObjectStorage stores source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// MessageQueue publishes/consumes ingestion events.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}

// TextExtractor extracts plain text from a stored document.
type TextExtractor interface {
	Extract(ctx context.Context, doc *domain.Document) (string, error)
}

// Chunker splits extracted text into token-bounded chunks.
type Chunker interface {
	Split(text string) []domain.TextChunk
}

// Embedder builds vectors for chunk and query text, one text per call.
type Embedder interface {
	EmbedChunk(ctx context.Context, text string) ([]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// AnswerGenerator creates user-facing text from prompts.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, systemPrompt string, history []domain.ChatMessage) (string, error)
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}

// AssessmentStore persists the raw submission with its computed result.
type AssessmentStore interface {
	Save(ctx context.Context, resp domain.AssessmentResponse, result *domain.AssessmentResult) error
}

// PromptStore persists editable prompt templates.
type PromptStore interface {
	Get(ctx context.Context, name string) (*domain.Prompt, error)
	Put(ctx context.Context, name, content string) error
	RecordUse(ctx context.Context, name string) error
}
