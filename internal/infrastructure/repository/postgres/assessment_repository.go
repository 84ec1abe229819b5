package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

type AssessmentRepository struct {
	db *sql.DB
}

func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Save stores the raw questionnaire next to the computed result, both as
// JSONB, with score and cluster lifted out for reporting queries.
func (r *AssessmentRepository) Save(ctx context.Context, resp domain.AssessmentResponse, result *domain.AssessmentResult) error {
	respJSON, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal assessment response: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal assessment result: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO assessments (
	id, company_name, email, website, response, result, overall_score, cluster, created_at
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
`,
		result.ID, resp.CompanyName, resp.Email, resp.Website,
		respJSON, resultJSON, result.OverallScore, string(result.Cluster), result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}
