package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

const (
	chatSearchThreshold = 0.75
	chatSearchLimit     = 3
	chatHistoryTurns    = 3
	dedupJaccardLimit   = 0.8
)

// retrieveChatContext grounds a chat turn in the indexed documents. It is
// deliberately fail-open: any embedding or search error yields an empty
// context so the conversation can continue ungrounded.
func (uc *ChatUseCase) retrieveChatContext(ctx context.Context, req domain.ChatRequest, question string) (string, []domain.RetrievedChunk) {
	query := augmentQueryWithHistory(question, req.Messages)

	queryVector, err := uc.embedder.EmbedQuery(ctx, query)
	if err != nil {
		slog.Warn("chat_context_skipped", "stage", "embed", "error", err)
		return "", nil
	}

	results, err := uc.chunks.Search(ctx, queryVector, domain.SearchFilter{
		CompanyContext: req.CompanyContext,
		Threshold:      chatSearchThreshold,
		Limit:          chatSearchLimit,
	})
	if err != nil {
		slog.Warn("chat_context_skipped", "stage", "search", "error", err)
		return "", nil
	}

	results = dedupChunks(results, dedupJaccardLimit)
	return formatSources(results), results
}

// augmentQueryWithHistory appends the last conversation turns verbatim so the
// retrieval query carries the dialogue topic, not just the final message.
func augmentQueryWithHistory(question string, history []domain.ChatMessage) string {
	turns := make([]string, 0, chatHistoryTurns)
	for i := len(history) - 1; i >= 0 && len(turns) < chatHistoryTurns; i-- {
		content := strings.TrimSpace(history[i].Content)
		if content == "" || content == strings.TrimSpace(question) {
			continue
		}
		turns = append([]string{content}, turns...)
	}
	if len(turns) == 0 {
		return question
	}
	return question + "\n" + strings.Join(turns, "\n")
}

// dedupChunks drops chunks that are near-duplicates of an already kept one,
// comparing word sets with Jaccard similarity.
func dedupChunks(chunks []domain.RetrievedChunk, limit float64) []domain.RetrievedChunk {
	out := make([]domain.RetrievedChunk, 0, len(chunks))
	for _, candidate := range chunks {
		duplicate := false
		for _, kept := range out {
			if jaccardSimilarity(candidate.Text, kept.Text) >= limit {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, candidate)
		}
	}
	return out
}

// formatSources renders retrieved chunks as numbered source blocks for prompt
// injection.
func formatSources(chunks []domain.RetrievedChunk) string {
	if len(chunks) == 0 {
		return ""
	}

	var b strings.Builder
	for i, chunk := range chunks {
		title := chunk.Title
		if title == "" {
			title = chunk.Filename
		}
		fmt.Fprintf(&b, "[FONTE %d] %s (rilevanza %d%%)\n%s\n\n",
			i+1, title, int(chunk.Similarity*100), strings.TrimSpace(chunk.Text))
	}
	return strings.TrimSpace(b.String())
}
