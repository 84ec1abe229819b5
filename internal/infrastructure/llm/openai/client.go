// Package openai talks to an OpenAI-compatible API for embeddings and chat
// completions. All calls go through the resilience executor; embedding calls
// for background ingestion are additionally rate limited.
package openai

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/resilience"
)

type Client struct {
	baseURL    string
	apiKey     string
	chatModel  string
	embedModel string
	httpClient *http.Client
	executor   *resilience.Executor
	limiter    *rate.Limiter
}

func New(baseURL, apiKey, chatModel, embedModel string, executor *resilience.Executor, embedRequestsPerSecond float64) *Client {
	if embedRequestsPerSecond <= 0 {
		embedRequestsPerSecond = 10
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		chatModel:  chatModel,
		embedModel: embedModel,
		httpClient: &http.Client{Timeout: 120 * time.Second},
		executor:   executor,
		limiter:    rate.NewLimiter(rate.Limit(embedRequestsPerSecond), 1),
	}
}

type Embedder struct {
	client *Client
}

func NewEmbedder(client *Client) *Embedder {
	return &Embedder{client: client}
}

// EmbedChunk embeds one chunk of document text. It waits on the client rate
// limiter so bulk ingestion stays under the provider's request quota.
func (e *Embedder) EmbedChunk(ctx context.Context, text string) ([]float32, error) {
	if err := e.client.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("embed rate limit wait: %w", err)
	}
	return e.client.embed(ctx, text)
}

// EmbedQuery embeds interactive query text without the ingestion rate limit.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.client.embed(ctx, text)
}

func (c *Client) embed(ctx context.Context, text string) ([]float32, error) {
	request := map[string]any{
		"model": c.embedModel,
		"input": []string{text},
	}

	var response struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}

	err := c.executor.Execute(ctx, "openai_embed", func(ctx context.Context) error {
		return c.postJSON(ctx, "/v1/embeddings", request, &response, "embed")
	}, classifyOpenAIError)
	if err != nil {
		return nil, wrapTemporaryIfNeeded("embed", err)
	}

	if len(response.Data) == 0 || len(response.Data[0].Embedding) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}
	return response.Data[0].Embedding, nil
}

type Generator struct {
	client *Client
}

func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

func (g *Generator) GenerateAnswer(ctx context.Context, systemPrompt string, history []domain.ChatMessage) (string, error) {
	messages := make([]chatMessage, 0, len(history)+1)
	messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	for _, msg := range history {
		role := msg.Role
		if role != "assistant" && role != "user" {
			role = "user"
		}
		messages = append(messages, chatMessage{Role: role, Content: msg.Content})
	}
	return g.client.complete(ctx, messages)
}

func (g *Generator) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	return g.client.complete(ctx, []chatMessage{{Role: "user", Content: prompt}})
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *Client) complete(ctx context.Context, messages []chatMessage) (string, error) {
	request := map[string]any{
		"model":    c.chatModel,
		"messages": messages,
	}

	var response struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}

	err := c.executor.Execute(ctx, "openai_chat", func(ctx context.Context) error {
		return c.postJSON(ctx, "/v1/chat/completions", request, &response, "chat")
	}, classifyOpenAIError)
	if err != nil {
		return "", wrapTemporaryIfNeeded("chat", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("empty completion result")
	}
	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
