package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

func TestPromptGetSeedsDefaultOnFirstAccess(t *testing.T) {
	store := newPromptStoreFake()
	uc := NewManagePromptsUseCase(store)

	prompt, err := uc.Get(context.Background(), domain.PromptChatSystem)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if prompt.Content != defaultPrompts[domain.PromptChatSystem] {
		t.Fatalf("expected seeded default content, got %q", prompt.Content)
	}
	if _, ok := store.prompts[domain.PromptChatSystem]; !ok {
		t.Fatalf("expected default persisted in store")
	}
}

func TestPromptGetReturnsStoredContent(t *testing.T) {
	store := newPromptStoreFake()
	if err := store.Put(context.Background(), domain.PromptRoadmap, "template personalizzato"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	uc := NewManagePromptsUseCase(store)

	prompt, err := uc.Get(context.Background(), domain.PromptRoadmap)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if prompt.Content != "template personalizzato" {
		t.Fatalf("expected stored content, got %q", prompt.Content)
	}
}

func TestPromptGetUnknownNameFails(t *testing.T) {
	uc := NewManagePromptsUseCase(newPromptStoreFake())

	_, err := uc.Get(context.Background(), "inesistente")
	if !domain.IsKind(err, domain.ErrPromptNotFound) {
		t.Fatalf("expected ErrPromptNotFound, got %v", err)
	}
}

func TestPromptGetPropagatesStoreFailure(t *testing.T) {
	store := newPromptStoreFake()
	store.getErr = errors.New("connection refused")
	uc := NewManagePromptsUseCase(store)

	_, err := uc.Get(context.Background(), domain.PromptChatSystem)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestPromptUpdateOverwritesContent(t *testing.T) {
	store := newPromptStoreFake()
	uc := NewManagePromptsUseCase(store)

	prompt, err := uc.Update(context.Background(), domain.PromptAssessmentSummary, "nuovo template {{score}}")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if prompt.Content != "nuovo template {{score}}" {
		t.Fatalf("expected updated content, got %q", prompt.Content)
	}
}

func TestPromptUpdateRejectsUnknownName(t *testing.T) {
	uc := NewManagePromptsUseCase(newPromptStoreFake())

	_, err := uc.Update(context.Background(), "sconosciuto", "contenuto")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPromptUpdateRejectsEmptyContent(t *testing.T) {
	uc := NewManagePromptsUseCase(newPromptStoreFake())

	_, err := uc.Update(context.Background(), domain.PromptChatSystem, "   ")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
