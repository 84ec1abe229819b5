package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

type statusChange struct {
	status     domain.DocumentStatus
	errMessage string
	chunkCount int
}

type processRepoFake struct {
	doc     *domain.Document
	getErr  error
	changes []statusChange
}

func (f *processRepoFake) Create(context.Context, *domain.Document) error {
	return errors.New("not implemented")
}

func (f *processRepoFake) GetByID(_ context.Context, id string) (*domain.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.doc == nil || f.doc.ID != id {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", errors.New(id))
	}
	return f.doc, nil
}

func (f *processRepoFake) List(context.Context) ([]domain.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *processRepoFake) UpdateStatus(_ context.Context, _ string, status domain.DocumentStatus, errMessage string, chunkCount int) error {
	f.changes = append(f.changes, statusChange{status: status, errMessage: errMessage, chunkCount: chunkCount})
	return nil
}

func (f *processRepoFake) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

type extractorFake struct {
	text string
	err  error
}

func (f *extractorFake) Extract(context.Context, *domain.Document) (string, error) {
	return f.text, f.err
}

type chunkerFake struct {
	chunks []domain.TextChunk
}

func (f *chunkerFake) Split(string) []domain.TextChunk { return f.chunks }

type embedderFake struct {
	failChunks map[string]error
	queryErr   error
	calls      int
}

func (f *embedderFake) EmbedChunk(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if err, ok := f.failChunks[text]; ok {
		return nil, err
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (f *embedderFake) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return []float32{0.5, 0.5, 0.5}, nil
}

type chunkStoreFake struct {
	inserted      []domain.DocumentChunk
	insertErr     error
	searchResults []domain.RetrievedChunk
	searchErr     error

	lastVector   []float32
	lastKeywords []string
	lastFilter   domain.SearchFilter
}

func (f *chunkStoreFake) InsertChunks(_ context.Context, chunks []domain.DocumentChunk) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, chunks...)
	return nil
}

func (f *chunkStoreFake) Search(_ context.Context, vector []float32, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	f.lastVector = vector
	f.lastFilter = filter
	return f.searchResults, f.searchErr
}

func (f *chunkStoreFake) HybridSearch(_ context.Context, vector []float32, keywords []string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error) {
	f.lastVector = vector
	f.lastKeywords = keywords
	f.lastFilter = filter
	return f.searchResults, f.searchErr
}

func processableDoc() *domain.Document {
	return &domain.Document{
		ID:          "doc-1",
		Filename:    "guida.txt",
		MimeType:    MimePlainText,
		StoragePath: "doc-1_guida.txt",
		Status:      domain.StatusPending,
	}
}

func TestProcessByIDCompletesAndCountsChunks(t *testing.T) {
	repo := &processRepoFake{doc: processableDoc()}
	store := &chunkStoreFake{}
	uc := NewProcessDocumentUseCase(
		repo,
		&extractorFake{text: "Metodo Innova supporta le aziende nella trasformazione digitale"},
		&chunkerFake{chunks: []domain.TextChunk{
			{Text: "Metodo Innova supporta le aziende", TokenCount: 5},
			{Text: "nella trasformazione digitale", TokenCount: 3},
		}},
		&embedderFake{},
		store,
	)

	if err := uc.ProcessByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}

	if len(repo.changes) != 2 {
		t.Fatalf("expected 2 status updates, got %d", len(repo.changes))
	}
	if repo.changes[0].status != domain.StatusProcessing {
		t.Fatalf("expected processing first, got %s", repo.changes[0].status)
	}
	last := repo.changes[1]
	if last.status != domain.StatusCompleted || last.chunkCount != 2 {
		t.Fatalf("expected completed with 2 chunks, got %s/%d", last.status, last.chunkCount)
	}
	if len(store.inserted) != 2 {
		t.Fatalf("expected 2 inserted chunks, got %d", len(store.inserted))
	}
	first := store.inserted[0]
	if first.DocumentID != "doc-1" || first.Index != 0 || first.TokenCount != 5 {
		t.Fatalf("unexpected first chunk: %+v", first)
	}
	if len(first.Embedding) == 0 {
		t.Fatalf("expected embedding on inserted chunk")
	}
	if len(first.Keywords) == 0 {
		t.Fatalf("expected keywords on inserted chunk")
	}
}

func TestProcessByIDSkipsFailedEmbeddings(t *testing.T) {
	repo := &processRepoFake{doc: processableDoc()}
	store := &chunkStoreFake{}
	uc := NewProcessDocumentUseCase(
		repo,
		&extractorFake{text: "testo"},
		&chunkerFake{chunks: []domain.TextChunk{
			{Text: "primo blocco di testo", TokenCount: 4},
			{Text: "blocco che fallisce", TokenCount: 3},
			{Text: "terzo blocco di testo", TokenCount: 4},
		}},
		&embedderFake{failChunks: map[string]error{
			"blocco che fallisce": errors.New("embedding service unavailable"),
		}},
		store,
	)

	if err := uc.ProcessByID(context.Background(), "doc-1"); err != nil {
		t.Fatalf("ProcessByID() error = %v", err)
	}

	last := repo.changes[len(repo.changes)-1]
	if last.status != domain.StatusCompleted || last.chunkCount != 2 {
		t.Fatalf("expected completed with 2 chunks, got %s/%d", last.status, last.chunkCount)
	}
	for _, chunk := range store.inserted {
		if chunk.Text == "blocco che fallisce" {
			t.Fatalf("failed chunk must not be persisted")
		}
	}
	// The skipped chunk keeps its original index so ordering survives.
	if store.inserted[1].Index != 2 {
		t.Fatalf("expected surviving chunk index 2, got %d", store.inserted[1].Index)
	}
}

func TestProcessByIDFailsWhenAllEmbeddingsFail(t *testing.T) {
	repo := &processRepoFake{doc: processableDoc()}
	uc := NewProcessDocumentUseCase(
		repo,
		&extractorFake{text: "testo"},
		&chunkerFake{chunks: []domain.TextChunk{{Text: "unico blocco", TokenCount: 2}}},
		&embedderFake{failChunks: map[string]error{
			"unico blocco": errors.New("down"),
		}},
		&chunkStoreFake{},
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}

	last := repo.changes[len(repo.changes)-1]
	if last.status != domain.StatusFailed {
		t.Fatalf("expected failed status, got %s", last.status)
	}
	if last.errMessage == "" {
		t.Fatalf("expected failure reason recorded on document")
	}
}

func TestProcessByIDMarksFailedOnEmptyText(t *testing.T) {
	repo := &processRepoFake{doc: processableDoc()}
	uc := NewProcessDocumentUseCase(
		repo,
		&extractorFake{text: ""},
		&chunkerFake{},
		&embedderFake{},
		&chunkStoreFake{},
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	last := repo.changes[len(repo.changes)-1]
	if last.status != domain.StatusFailed {
		t.Fatalf("expected failed status, got %s", last.status)
	}
	if !strings.Contains(last.errMessage, "empty extracted text") {
		t.Fatalf("expected extraction reason, got %q", last.errMessage)
	}
}

func TestProcessByIDMarksFailedOnInsertError(t *testing.T) {
	repo := &processRepoFake{doc: processableDoc()}
	uc := NewProcessDocumentUseCase(
		repo,
		&extractorFake{text: "testo"},
		&chunkerFake{chunks: []domain.TextChunk{{Text: "blocco", TokenCount: 1}}},
		&embedderFake{},
		&chunkStoreFake{insertErr: fmt.Errorf("connection reset")},
	)

	err := uc.ProcessByID(context.Background(), "doc-1")
	if err == nil {
		t.Fatalf("expected error")
	}

	last := repo.changes[len(repo.changes)-1]
	if last.status != domain.StatusFailed {
		t.Fatalf("expected failed status, got %s", last.status)
	}
}
