package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
)

var defaultPrompts = map[string]string{
	domain.PromptChatSystem: "Sei un consulente esperto di adozione dell'AI nelle PMI italiane. " +
		"Rispondi in italiano, in modo concreto e professionale. " +
		"Quando sono disponibili documenti aziendali, basa le risposte sulle fonti fornite e citale come [FONTE N]. " +
		"Se le fonti non coprono la domanda, dillo esplicitamente.",
	domain.PromptAssessmentSummary: "Scrivi una sintesi professionale (massimo 150 parole) del livello di maturità AI di un'azienda. " +
		"Punteggio complessivo: {{score}}/100, profilo: {{cluster}}. " +
		"Dettaglio dimensioni:\n{{dimensions}}\n" +
		"Evidenzia i due punti di forza principali e le due aree di intervento prioritarie, con tono incoraggiante ma realistico.",
	domain.PromptRoadmap: "Genera una roadmap di adozione AI in tre fasi per un'azienda con profilo {{cluster}} " +
		"e punteggio {{score}}/100. Per ogni fase indica obiettivo, attività chiave e risultato atteso.",
}

// ManagePromptsUseCase owns the admin-editable prompt templates. Templates
// are seeded from the built-in defaults the first time they are read.
type ManagePromptsUseCase struct {
	store ports.PromptStore
}

func NewManagePromptsUseCase(store ports.PromptStore) *ManagePromptsUseCase {
	return &ManagePromptsUseCase{store: store}
}

func (uc *ManagePromptsUseCase) Get(ctx context.Context, name string) (*domain.Prompt, error) {
	prompt, err := uc.store.Get(ctx, name)
	if err == nil {
		return prompt, nil
	}
	if !domain.IsKind(err, domain.ErrPromptNotFound) {
		return nil, fmt.Errorf("load prompt %s: %w", name, err)
	}

	content, ok := defaultPrompts[name]
	if !ok {
		return nil, err
	}
	if putErr := uc.store.Put(ctx, name, content); putErr != nil {
		return nil, fmt.Errorf("seed prompt %s: %w", name, putErr)
	}
	return uc.store.Get(ctx, name)
}

func (uc *ManagePromptsUseCase) Update(ctx context.Context, name, content string) (*domain.Prompt, error) {
	if _, known := defaultPrompts[name]; !known {
		return nil, domain.WrapError(domain.ErrInvalidInput, "update prompt", fmt.Errorf("unknown prompt name %q", name))
	}
	if strings.TrimSpace(content) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "update prompt", fmt.Errorf("content is empty"))
	}
	if err := uc.store.Put(ctx, name, content); err != nil {
		return nil, fmt.Errorf("store prompt %s: %w", name, err)
	}
	return uc.store.Get(ctx, name)
}

func (uc *ManagePromptsUseCase) RecordUse(ctx context.Context, name string) error {
	return uc.store.RecordUse(ctx, name)
}
