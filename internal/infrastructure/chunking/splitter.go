package chunking

import (
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

// Tokenizer maps text to token ids and back. The production implementation
// wraps tiktoken; tests use a trivial word tokenizer.
type Tokenizer interface {
	Encode(text string) []int
	Decode(tokens []int) string
}

// Splitter cuts text into fixed-size token windows with overlap, so every
// chunk fits the embedding model's input and neighbouring chunks share
// context.
type Splitter struct {
	tokenizer Tokenizer
	ChunkSize int
	Overlap   int
}

func NewSplitter(tokenizer Tokenizer, chunkSize, overlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = 800
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 4
	}
	return &Splitter{
		tokenizer: tokenizer,
		ChunkSize: chunkSize,
		Overlap:   overlap,
	}
}

func (s *Splitter) Split(text string) []domain.TextChunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokens := s.tokenizer.Encode(text)
	if len(tokens) == 0 {
		return nil
	}

	step := s.ChunkSize - s.Overlap
	if step <= 0 {
		step = s.ChunkSize
	}

	out := make([]domain.TextChunk, 0, len(tokens)/step+1)
	for start := 0; start < len(tokens); start += step {
		end := start + s.ChunkSize
		if end > len(tokens) {
			end = len(tokens)
		}
		window := tokens[start:end]
		chunk := strings.TrimSpace(s.tokenizer.Decode(window))
		if chunk != "" {
			out = append(out, domain.TextChunk{
				Text:       chunk,
				TokenCount: len(window),
			})
		}
		if end == len(tokens) {
			break
		}
	}
	return out
}
