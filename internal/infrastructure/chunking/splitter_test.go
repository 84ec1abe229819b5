package chunking

import (
	"strings"
	"testing"
)

// wordTokenizer treats each whitespace-separated word as one token.
type wordTokenizer struct {
	words []string
}

func (w *wordTokenizer) Encode(text string) []int {
	w.words = strings.Fields(text)
	tokens := make([]int, len(w.words))
	for i := range tokens {
		tokens[i] = i
	}
	return tokens
}

func (w *wordTokenizer) Decode(tokens []int) string {
	words := make([]string, len(tokens))
	for i, tok := range tokens {
		words[i] = w.words[tok]
	}
	return strings.Join(words, " ")
}

func repeatWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "w" + strings.Repeat("o", i%7)
	}
	return strings.Join(words, " ")
}

func TestSplitShortTextYieldsSingleChunk(t *testing.T) {
	s := NewSplitter(&wordTokenizer{}, 800, 200)

	chunks := s.Split(repeatWords(100))
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].TokenCount != 100 {
		t.Fatalf("expected 100 tokens, got %d", chunks[0].TokenCount)
	}
}

func TestSplitWindowsRespectSizeAndOverlap(t *testing.T) {
	s := NewSplitter(&wordTokenizer{}, 800, 200)

	chunks := s.Split(repeatWords(2000))
	// step 600: windows at 0, 600, 1200, 1800.
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks[:3] {
		if chunk.TokenCount != 800 {
			t.Fatalf("chunk %d: expected 800 tokens, got %d", i, chunk.TokenCount)
		}
	}
	if chunks[3].TokenCount != 200 {
		t.Fatalf("last chunk: expected 200 tokens, got %d", chunks[3].TokenCount)
	}

	// Consecutive chunks share the 200-token overlap verbatim.
	firstWords := strings.Fields(chunks[0].Text)
	secondWords := strings.Fields(chunks[1].Text)
	tail := strings.Join(firstWords[len(firstWords)-200:], " ")
	head := strings.Join(secondWords[:200], " ")
	if tail != head {
		t.Fatalf("expected 200-token overlap between chunks 0 and 1")
	}
}

func TestSplitEmptyAndBlankText(t *testing.T) {
	s := NewSplitter(&wordTokenizer{}, 800, 200)

	if chunks := s.Split(""); chunks != nil {
		t.Fatalf("expected nil for empty text, got %v", chunks)
	}
	if chunks := s.Split("   \n\t "); chunks != nil {
		t.Fatalf("expected nil for blank text, got %v", chunks)
	}
}

func TestNewSplitterNormalizesBadParameters(t *testing.T) {
	s := NewSplitter(&wordTokenizer{}, 0, -5)
	if s.ChunkSize != 800 || s.Overlap != 0 {
		t.Fatalf("expected defaults 800/0, got %d/%d", s.ChunkSize, s.Overlap)
	}

	s = NewSplitter(&wordTokenizer{}, 100, 150)
	if s.Overlap != 25 {
		t.Fatalf("expected overlap clamped to 25, got %d", s.Overlap)
	}
}
