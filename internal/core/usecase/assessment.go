package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
	"github.com/metodoinnova/ai-readiness/internal/core/scoring"
)

type SubmitAssessmentUseCase struct {
	store     ports.AssessmentStore
	prompts   *ManagePromptsUseCase
	generator ports.AnswerGenerator
}

func NewSubmitAssessmentUseCase(
	store ports.AssessmentStore,
	prompts *ManagePromptsUseCase,
	generator ports.AnswerGenerator,
) *SubmitAssessmentUseCase {
	return &SubmitAssessmentUseCase{
		store:     store,
		prompts:   prompts,
		generator: generator,
	}
}

// Submit scores the questionnaire, attaches a narrative summary and persists
// the snapshot. Scoring is pure and cannot fail; only the summary generation
// and persistence touch the outside world.
func (uc *SubmitAssessmentUseCase) Submit(ctx context.Context, resp domain.AssessmentResponse) (*domain.AssessmentResult, error) {
	result := scoring.Calculate(resp)
	result.ID = uuid.NewString()

	// The LLM summary is best-effort: on failure the result ships with the
	// static per-cluster text and the fallback is flagged, not hidden.
	summary, err := uc.generateSummary(ctx, &result)
	if err != nil {
		slog.Warn("assessment_summary_fallback", "assessment_id", result.ID, "error", err)
		summary = fallbackSummary(&result)
		result.SummaryFallback = true
	}
	result.Summary = summary

	if err := uc.store.Save(ctx, resp, &result); err != nil {
		return nil, fmt.Errorf("persist assessment: %w", err)
	}
	return &result, nil
}

func (uc *SubmitAssessmentUseCase) generateSummary(ctx context.Context, result *domain.AssessmentResult) (string, error) {
	template := defaultPrompts[domain.PromptAssessmentSummary]
	prompt, err := uc.prompts.Get(ctx, domain.PromptAssessmentSummary)
	if err == nil {
		template = prompt.Content
		if recordErr := uc.prompts.RecordUse(ctx, domain.PromptAssessmentSummary); recordErr != nil {
			slog.Warn("assessment_prompt_usage_not_recorded", "error", recordErr)
		}
	}

	text, err := uc.generator.GenerateFromPrompt(ctx, renderSummaryPrompt(template, result))
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty summary from generator")
	}
	return text, nil
}

func renderSummaryPrompt(template string, result *domain.AssessmentResult) string {
	var dims strings.Builder
	for _, d := range result.Dimensions {
		fmt.Fprintf(&dims, "- %s: %.0f%% (%s)\n", d.Dimension, d.Percentage, d.Level)
	}

	replacer := strings.NewReplacer(
		"{{score}}", fmt.Sprintf("%d", result.OverallScore),
		"{{cluster}}", string(result.Cluster),
		"{{dimensions}}", strings.TrimSpace(dims.String()),
	)
	return replacer.Replace(template)
}

func fallbackSummary(result *domain.AssessmentResult) string {
	strongest := result.Dimensions[0]
	weakest := result.Dimensions[0]
	for _, d := range result.Dimensions[1:] {
		if d.Percentage > strongest.Percentage {
			strongest = d
		}
		if d.Percentage < weakest.Percentage {
			weakest = d
		}
	}

	return fmt.Sprintf(
		"La tua azienda ha ottenuto un punteggio di %d/100 e rientra nel profilo %s. "+
			"L'area più matura è %s (%.0f%%), mentre %s (%.0f%%) è quella con il maggior margine di crescita. "+
			"Rispetto al settore %s ti collochi %s.",
		result.OverallScore, result.Cluster,
		strongest.Dimension, strongest.Percentage,
		weakest.Dimension, weakest.Percentage,
		result.Benchmark.Industry, result.Benchmark.Comparison,
	)
}
