package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

type PromptRepository struct {
	db *sql.DB
}

func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

func (r *PromptRepository) Get(ctx context.Context, name string) (*domain.Prompt, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT name, content, usage_count, last_used_at, updated_at
FROM prompts
WHERE name = $1
`, name)

	var prompt domain.Prompt
	var lastUsedAt sql.NullTime
	err := row.Scan(&prompt.Name, &prompt.Content, &prompt.UsageCount, &lastUsedAt, &prompt.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.WrapError(domain.ErrPromptNotFound, "get prompt", errors.New(name))
		}
		return nil, fmt.Errorf("scan prompt: %w", err)
	}
	if lastUsedAt.Valid {
		prompt.LastUsedAt = &lastUsedAt.Time
	}
	return &prompt, nil
}

func (r *PromptRepository) Put(ctx context.Context, name, content string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO prompts (name, content, usage_count, updated_at)
VALUES ($1, $2, 0, $3)
ON CONFLICT (name) DO UPDATE SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
`, name, content, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert prompt: %w", err)
	}
	return nil
}

func (r *PromptRepository) RecordUse(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE prompts
SET usage_count = usage_count + 1, last_used_at = $2
WHERE name = $1
`, name, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record prompt use: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("record prompt use affected rows: %w", err)
	}
	if affected == 0 {
		return domain.WrapError(domain.ErrPromptNotFound, "record prompt use", errors.New(name))
	}
	return nil
}
