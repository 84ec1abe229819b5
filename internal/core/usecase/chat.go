package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
)

type ChatUseCase struct {
	embedder  ports.Embedder
	chunks    ports.ChunkStore
	prompts   *ManagePromptsUseCase
	generator ports.AnswerGenerator
}

func NewChatUseCase(
	embedder ports.Embedder,
	chunks ports.ChunkStore,
	prompts *ManagePromptsUseCase,
	generator ports.AnswerGenerator,
) *ChatUseCase {
	return &ChatUseCase{
		embedder:  embedder,
		chunks:    chunks,
		prompts:   prompts,
		generator: generator,
	}
}

func (uc *ChatUseCase) Chat(ctx context.Context, req domain.ChatRequest) (*domain.Answer, error) {
	question, ok := latestUserMessage(req.Messages)
	if !ok {
		return nil, domain.WrapError(domain.ErrInvalidInput, "chat", fmt.Errorf("at least one user message is required"))
	}

	contextBlock, sources := uc.retrieveChatContext(ctx, req, question)
	systemPrompt := uc.systemPrompt(ctx, contextBlock)

	answerText, err := uc.generator.GenerateAnswer(ctx, systemPrompt, req.Messages)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &domain.Answer{
		Text:    answerText,
		Sources: sources,
	}, nil
}

// systemPrompt loads the admin-editable chat template and appends the
// retrieved context. A prompt-store failure falls back to the seeded default
// so the chat never hard-fails on admin data.
func (uc *ChatUseCase) systemPrompt(ctx context.Context, contextBlock string) string {
	content := defaultPrompts[domain.PromptChatSystem]
	prompt, err := uc.prompts.Get(ctx, domain.PromptChatSystem)
	if err != nil {
		slog.Warn("chat_prompt_fallback", "error", err)
	} else {
		content = prompt.Content
		if recordErr := uc.prompts.RecordUse(ctx, domain.PromptChatSystem); recordErr != nil {
			slog.Warn("chat_prompt_usage_not_recorded", "error", recordErr)
		}
	}

	if contextBlock == "" {
		return content
	}
	return content + "\n\nDocumenti aziendali rilevanti:\n" + contextBlock
}

func latestUserMessage(messages []domain.ChatMessage) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" && strings.TrimSpace(messages[i].Content) != "" {
			return strings.TrimSpace(messages[i].Content), true
		}
	}
	return "", false
}
