package config

import "testing"

func TestLoadChunkingDefaults(t *testing.T) {
	t.Setenv("CHUNK_SIZE_TOKENS", "")
	t.Setenv("CHUNK_OVERLAP_TOKENS", "")
	t.Setenv("TOKEN_ENCODING", "")

	cfg := Load()
	if cfg.ChunkSizeTokens != 800 {
		t.Fatalf("expected default chunk size 800, got %d", cfg.ChunkSizeTokens)
	}
	if cfg.ChunkOverlapTokens != 200 {
		t.Fatalf("expected default overlap 200, got %d", cfg.ChunkOverlapTokens)
	}
	if cfg.TokenEncoding != "cl100k_base" {
		t.Fatalf("expected default encoding cl100k_base, got %q", cfg.TokenEncoding)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("CHUNK_SIZE_TOKENS", "512")
	t.Setenv("EMBED_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("NATS_SUBJECT", "docs.custom")

	cfg := Load()
	if cfg.ChunkSizeTokens != 512 {
		t.Fatalf("expected chunk size override, got %d", cfg.ChunkSizeTokens)
	}
	if cfg.EmbedRequestsPerSecond != 2.5 {
		t.Fatalf("expected embed rate override, got %v", cfg.EmbedRequestsPerSecond)
	}
	if cfg.NATSSubject != "docs.custom" {
		t.Fatalf("expected subject override, got %q", cfg.NATSSubject)
	}
}

func TestLoadFallsBackOnUnparsableValues(t *testing.T) {
	t.Setenv("CHUNK_SIZE_TOKENS", "not-a-number")
	t.Setenv("EMBED_REQUESTS_PER_SECOND", "fast")

	cfg := Load()
	if cfg.ChunkSizeTokens != 800 {
		t.Fatalf("expected fallback chunk size, got %d", cfg.ChunkSizeTokens)
	}
	if cfg.EmbedRequestsPerSecond != 10 {
		t.Fatalf("expected fallback embed rate, got %v", cfg.EmbedRequestsPerSecond)
	}
}
