package domain

import "time"

// Prompt names recognized by the admin surface. Each is seeded with a
// default template on first access.
const (
	PromptChatSystem        = "chat_system"
	PromptAssessmentSummary = "assessment_summary"
	PromptRoadmap           = "roadmap"
)

type Prompt struct {
	Name       string     `json:"name"`
	Content    string     `json:"content"`
	UsageCount int        `json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
