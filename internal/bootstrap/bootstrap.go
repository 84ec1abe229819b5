// Package bootstrap is the composition root: it builds every adapter and use
// case from configuration and hands the wired application to the binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/metodoinnova/ai-readiness/internal/config"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
	"github.com/metodoinnova/ai-readiness/internal/core/usecase"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/chunking"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/extractor"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/llm/openai"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/queue/nats"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/repository/postgres"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/resilience"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/storage/localfs"
)

type App struct {
	Config config.Config

	Queue   ports.MessageQueue
	Repo    ports.DocumentRepository
	Storage ports.ObjectStorage

	IngestUC  ports.DocumentIngestor
	ProcessUC ports.DocumentProcessor
	SearchUC  ports.SearchService
	ChatUC    ports.ChatService
	AssessUC  ports.AssessmentService
	PromptsUC ports.PromptAdmin

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	repo := postgres.NewDocumentRepository(db)
	chunkStore := postgres.NewChunkStore(db)
	assessmentRepo := postgres.NewAssessmentRepository(db)
	promptRepo := postgres.NewPromptRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: executor,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	openaiClient := openai.New(
		cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIChatModel, cfg.OpenAIEmbedModel,
		executor, cfg.EmbedRequestsPerSecond,
	)
	embedder := openai.NewEmbedder(openaiClient)
	generator := openai.NewGenerator(openaiClient)

	tokenizer, err := chunking.NewTiktokenTokenizer(cfg.TokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	chunker := chunking.NewSplitter(tokenizer, cfg.ChunkSizeTokens, cfg.ChunkOverlapTokens)
	textExtractor := extractor.New(storage)

	promptsUC := usecase.NewManagePromptsUseCase(promptRepo)
	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(repo, textExtractor, chunker, embedder, chunkStore)
	searchUC := usecase.NewSearchUseCase(embedder, chunkStore)
	chatUC := usecase.NewChatUseCase(embedder, chunkStore, promptsUC, generator)
	assessUC := usecase.NewSubmitAssessmentUseCase(assessmentRepo, promptsUC, generator)

	return &App{
		Config:  cfg,
		Queue:   queue,
		Repo:    repo,
		Storage: storage,

		IngestUC:  ingestUC,
		ProcessUC: processUC,
		SearchUC:  searchUC,
		ChatUC:    chatUC,
		AssessUC:  assessUC,
		PromptsUC: promptsUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
