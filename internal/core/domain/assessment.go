package domain

import "time"

// AssessmentResponse is the raw questionnaire submission. Every field is
// optional: ratings are 1-5 (0 means unanswered), closed answers carry the
// Italian questionnaire values ("si", "no", "parzialmente", ...), and
// multi-select questions arrive as string lists. Unanswered questions simply
// contribute zero to the score.
type AssessmentResponse struct {
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`

	// Strategia
	DigitalStrategy  int    `json:"digital_strategy,omitempty"`
	AIObjectives     string `json:"ai_objectives,omitempty"`
	InnovationBudget string `json:"innovation_budget,omitempty"`
	LeadershipVision int    `json:"leadership_vision,omitempty"`

	// Tecnologia
	CloudInfrastructure string `json:"cloud_infrastructure,omitempty"`
	SystemsIntegration  int    `json:"systems_integration,omitempty"`
	AITools             string `json:"ai_tools,omitempty"`
	PilotProjects       string `json:"pilot_projects,omitempty"`

	// Persone
	InternalSkills     int    `json:"internal_skills,omitempty"`
	ContinuousTraining string `json:"continuous_training,omitempty"`
	DedicatedTeam      string `json:"dedicated_team,omitempty"`

	// Governance
	DataPolicies      string `json:"data_policies,omitempty"`
	PrivacyCompliance string `json:"privacy_compliance,omitempty"`
	RiskManagement    int    `json:"risk_management,omitempty"`

	// Dati
	DataQuality          int    `json:"data_quality,omitempty"`
	StructuredCollection string `json:"structured_collection,omitempty"`
	DataAnalysis         int    `json:"data_analysis,omitempty"`

	// Cultura
	ChangeReadiness        int    `json:"change_readiness,omitempty"`
	ExperimentationSupport string `json:"experimentation_support,omitempty"`
	CrossTeamCollaboration int    `json:"cross_team_collaboration,omitempty"`

	CurrentUseCases []string `json:"current_use_cases,omitempty"`
	MainObstacles   []string `json:"main_obstacles,omitempty"`
}

type Cluster string

const (
	ClusterExplorer Cluster = "AI Explorer"
	ClusterStarter  Cluster = "AI Starter"
	ClusterAdopter  Cluster = "AI Adopter"
	ClusterLeader   Cluster = "AI Leader"
)

type DimensionScore struct {
	Dimension   string  `json:"dimension"`
	Raw         int     `json:"raw"`
	Max         int     `json:"max"`
	Percentage  float64 `json:"percentage"`
	Level       string  `json:"level"`
	Description string  `json:"description"`
}

type IndustryBenchmark struct {
	Industry     string `json:"industry"`
	AverageScore int    `json:"average_score"`
	Top25Score   int    `json:"top25_score"`
	Top10Score   int    `json:"top10_score"`
	Percentile   int    `json:"percentile"`
	Comparison   string `json:"comparison"`
}

type Recommendations struct {
	ShortTerm []string `json:"short_term"`
	MidTerm   []string `json:"mid_term"`
	LongTerm  []string `json:"long_term"`
}

type ROIProjection struct {
	EstimatedROIPercent int    `json:"estimated_roi_percent"`
	PaybackMonths       int    `json:"payback_months"`
	Confidence          string `json:"confidence"`
}

type CompetitiveInsights struct {
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// AssessmentResult is the deterministic projection of a response: computed
// once, never mutated, persisted verbatim next to the raw submission.
type AssessmentResult struct {
	ID              string              `json:"id,omitempty"`
	OverallScore    int                 `json:"overall_score"`
	Cluster         Cluster             `json:"cluster"`
	Dimensions      []DimensionScore    `json:"dimensions"`
	Benchmark       IndustryBenchmark   `json:"benchmark"`
	Recommendations Recommendations     `json:"recommendations"`
	ROI             ROIProjection       `json:"roi"`
	Insights        CompetitiveInsights `json:"insights"`
	Summary         string              `json:"summary,omitempty"`
	SummaryFallback bool                `json:"summary_fallback,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}
