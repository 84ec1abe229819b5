package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

type assessmentStoreFake struct {
	savedResp   *domain.AssessmentResponse
	savedResult *domain.AssessmentResult
	err         error
}

func (f *assessmentStoreFake) Save(_ context.Context, resp domain.AssessmentResponse, result *domain.AssessmentResult) error {
	if f.err != nil {
		return f.err
	}
	f.savedResp = &resp
	copyResult := *result
	f.savedResult = &copyResult
	return nil
}

func sampleResponse() domain.AssessmentResponse {
	return domain.AssessmentResponse{
		CompanyName:         "Officine Bianchi",
		Email:               "info@officinebianchi.it",
		Website:             "https://officinebianchi.it",
		DigitalStrategy:     4,
		AIObjectives:        "si",
		LeadershipVision:    4,
		CloudInfrastructure: "si",
		SystemsIntegration:  3,
		PilotProjects:       "1-3",
		InternalSkills:      3,
		DataPolicies:        "parzialmente",
		RiskManagement:      2,
		DataQuality:         4,
		DataAnalysis:        3,
		ChangeReadiness:     4,
	}
}

func TestSubmitPersistsResultWithGeneratedSummary(t *testing.T) {
	store := &assessmentStoreFake{}
	gen := &generatorFake{answer: "Sintesi generata dal modello."}
	uc := NewSubmitAssessmentUseCase(store, NewManagePromptsUseCase(newPromptStoreFake()), gen)

	result, err := uc.Submit(context.Background(), sampleResponse())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.ID == "" {
		t.Fatalf("expected assigned assessment id")
	}
	if result.Summary != "Sintesi generata dal modello." {
		t.Fatalf("unexpected summary %q", result.Summary)
	}
	if result.SummaryFallback {
		t.Fatalf("expected generated summary, not fallback")
	}
	if store.savedResult == nil || store.savedResult.ID != result.ID {
		t.Fatalf("expected result persisted with same id")
	}
	if store.savedResp.CompanyName != "Officine Bianchi" {
		t.Fatalf("expected raw response persisted, got %+v", store.savedResp)
	}
	if strings.Contains(gen.lastPrompt, "{{score}}") {
		t.Fatalf("expected score placeholder rendered, got %q", gen.lastPrompt)
	}
}

func TestSubmitRendersPlaceholdersIntoPrompt(t *testing.T) {
	gen := &generatorFake{answer: "ok"}
	uc := NewSubmitAssessmentUseCase(&assessmentStoreFake{}, NewManagePromptsUseCase(newPromptStoreFake()), gen)

	result, err := uc.Submit(context.Background(), sampleResponse())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if strings.Contains(gen.lastPrompt, "{{") {
		t.Fatalf("expected all placeholders replaced, got %q", gen.lastPrompt)
	}
	if !strings.Contains(gen.lastPrompt, string(result.Cluster)) {
		t.Fatalf("expected cluster %q in prompt, got %q", result.Cluster, gen.lastPrompt)
	}
}

func TestSubmitFallsBackWhenGeneratorFails(t *testing.T) {
	store := &assessmentStoreFake{}
	gen := &generatorFake{err: errors.New("model unavailable")}
	uc := NewSubmitAssessmentUseCase(store, NewManagePromptsUseCase(newPromptStoreFake()), gen)

	result, err := uc.Submit(context.Background(), sampleResponse())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.SummaryFallback {
		t.Fatalf("expected fallback flag set")
	}
	if result.Summary == "" {
		t.Fatalf("expected non-empty fallback summary")
	}
	if !strings.Contains(result.Summary, string(result.Cluster)) {
		t.Fatalf("expected cluster named in fallback summary, got %q", result.Summary)
	}
	if store.savedResult == nil || !store.savedResult.SummaryFallback {
		t.Fatalf("expected fallback flag persisted")
	}
}

func TestSubmitFallsBackOnEmptySummary(t *testing.T) {
	gen := &generatorFake{answer: "   "}
	uc := NewSubmitAssessmentUseCase(&assessmentStoreFake{}, NewManagePromptsUseCase(newPromptStoreFake()), gen)

	result, err := uc.Submit(context.Background(), sampleResponse())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !result.SummaryFallback {
		t.Fatalf("expected fallback on blank model output")
	}
}

func TestSubmitFailsWhenPersistenceFails(t *testing.T) {
	store := &assessmentStoreFake{err: errors.New("disk full")}
	uc := NewSubmitAssessmentUseCase(store, NewManagePromptsUseCase(newPromptStoreFake()), &generatorFake{answer: "ok"})

	_, err := uc.Submit(context.Background(), sampleResponse())
	if err == nil {
		t.Fatalf("expected error")
	}
}
