// Package scoring turns a questionnaire submission into a weighted
// multi-dimensional maturity score. Everything here is pure and
// deterministic: missing answers contribute zero, the function cannot fail.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

// Dimension weights. Must sum to 1.00; Weights() is exported so tests can
// verify the invariant.
const (
	weightStrategy   = 0.22
	weightTechnology = 0.22
	weightPeople     = 0.18
	weightGovernance = 0.14
	weightData       = 0.14
	weightCulture    = 0.10
)

// Cluster boundaries on the overall 0-100 score.
const (
	clusterExplorerMax = 30
	clusterStarterMax  = 45
	clusterAdopterMax  = 65
)

func Weights() map[string]float64 {
	return map[string]float64{
		dimStrategy:   weightStrategy,
		dimTechnology: weightTechnology,
		dimPeople:     weightPeople,
		dimGovernance: weightGovernance,
		dimData:       weightData,
		dimCulture:    weightCulture,
	}
}

const (
	dimStrategy   = "Strategia"
	dimTechnology = "Tecnologia"
	dimPeople     = "Persone"
	dimGovernance = "Governance"
	dimData       = "Dati"
	dimCulture    = "Cultura"
)

// Calculate produces the full assessment result for a submission. The
// narrative summary is left empty; it is generated separately by the caller.
func Calculate(resp domain.AssessmentResponse) domain.AssessmentResult {
	dims := []domain.DimensionScore{
		dimension(dimStrategy,
			clampRating(resp.DigitalStrategy)+
				scoreAnswer(resp.AIObjectives)+
				scoreAnswer(resp.InnovationBudget)+
				clampRating(resp.LeadershipVision),
			20),
		dimension(dimTechnology,
			scoreAnswer(resp.CloudInfrastructure)+
				clampRating(resp.SystemsIntegration)+
				scoreAnswer(resp.AITools)+
				scorePilotProjects(resp.PilotProjects),
			20),
		dimension(dimPeople,
			clampRating(resp.InternalSkills)+
				scoreAnswer(resp.ContinuousTraining)+
				scoreAnswer(resp.DedicatedTeam),
			15),
		dimension(dimGovernance,
			scoreAnswer(resp.DataPolicies)+
				scoreAnswer(resp.PrivacyCompliance)+
				clampRating(resp.RiskManagement),
			15),
		dimension(dimData,
			clampRating(resp.DataQuality)+
				scoreAnswer(resp.StructuredCollection)+
				clampRating(resp.DataAnalysis),
			15),
		dimension(dimCulture,
			clampRating(resp.ChangeReadiness)+
				scoreAnswer(resp.ExperimentationSupport)+
				clampRating(resp.CrossTeamCollaboration),
			15),
	}

	weights := Weights()
	weighted := 0.0
	for _, d := range dims {
		weighted += weights[d.Dimension] * d.Percentage
	}
	overall := int(math.Round(weighted))
	cluster := clusterFor(overall)

	tmpl := tables.Clusters[string(cluster)]

	return domain.AssessmentResult{
		OverallScore: overall,
		Cluster:      cluster,
		Dimensions:   dims,
		Benchmark:    benchmarkFor(resp.Website, overall),
		Recommendations: domain.Recommendations{
			ShortTerm: tmpl.Recommendations.ShortTerm,
			MidTerm:   tmpl.Recommendations.MidTerm,
			LongTerm:  tmpl.Recommendations.LongTerm,
		},
		ROI: domain.ROIProjection{
			EstimatedROIPercent: tmpl.ROI.EstimatedROIPercent,
			PaybackMonths:       tmpl.ROI.PaybackMonths,
			Confidence:          tmpl.ROI.Confidence,
		},
		Insights: domain.CompetitiveInsights{
			Strengths: tmpl.Insights.Strengths,
			Gaps:      tmpl.Insights.Gaps,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func dimension(name string, raw, max int) domain.DimensionScore {
	pct := 0.0
	if max > 0 {
		pct = float64(raw) / float64(max) * 100
	}
	level := levelFor(pct)
	return domain.DimensionScore{
		Dimension:   name,
		Raw:         raw,
		Max:         max,
		Percentage:  pct,
		Level:       level,
		Description: tables.Dimensions[name][level],
	}
}

func clusterFor(overall int) domain.Cluster {
	switch {
	case overall <= clusterExplorerMax:
		return domain.ClusterExplorer
	case overall <= clusterStarterMax:
		return domain.ClusterStarter
	case overall <= clusterAdopterMax:
		return domain.ClusterAdopter
	default:
		return domain.ClusterLeader
	}
}

func levelFor(pct float64) string {
	switch {
	case pct >= 80:
		return "Esperto"
	case pct >= 65:
		return "Avanzato"
	case pct >= 40:
		return "In sviluppo"
	default:
		return "Principiante"
	}
}

// scoreAnswer maps the questionnaire's closed answers onto the 0-5 scale.
func scoreAnswer(answer string) int {
	switch normalizeAnswer(answer) {
	case "si":
		return 5
	case "parzialmente", "in_parte", "limitate":
		return 3
	case "previsto_a_breve", "previsto", "pianificato":
		return 3
	case "non_lo_so":
		return 1
	case "no":
		return 0
	default:
		return 0
	}
}

// scorePilotProjects maps the pilot-project count buckets.
func scorePilotProjects(bucket string) int {
	switch strings.TrimSpace(bucket) {
	case ">7":
		return 5
	case "3-7":
		return 4
	case "1-3":
		return 3
	case "0":
		return 0
	default:
		return 0
	}
}

func clampRating(v int) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return v
}

func normalizeAnswer(answer string) string {
	answer = strings.ToLower(strings.TrimSpace(answer))
	answer = strings.ReplaceAll(answer, " ", "_")
	return answer
}
