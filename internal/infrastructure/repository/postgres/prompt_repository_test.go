package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

func newPromptRepoWithMock(t *testing.T) (*PromptRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	return &PromptRepository{db: db}, mock, func() { _ = db.Close() }
}

func TestPromptGetReturnsDomainNotFound(t *testing.T) {
	repo, mock, done := newPromptRepoWithMock(t)
	defer done()

	mock.ExpectQuery("SELECT name, content, usage_count").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrPromptNotFound) {
		t.Fatalf("expected ErrPromptNotFound, got %v", err)
	}
}

func TestPromptGetScansNullLastUsedAt(t *testing.T) {
	repo, mock, done := newPromptRepoWithMock(t)
	defer done()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"name", "content", "usage_count", "last_used_at", "updated_at"}).
		AddRow("chat_system", "contenuto", int64(0), nil, now)

	mock.ExpectQuery("SELECT name, content, usage_count").
		WithArgs("chat_system").
		WillReturnRows(rows)

	prompt, err := repo.Get(context.Background(), "chat_system")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if prompt.LastUsedAt != nil {
		t.Fatalf("expected nil LastUsedAt for never-used prompt")
	}
}

func TestPromptRecordUseReturnsDomainNotFoundWhenNoRowsAffected(t *testing.T) {
	repo, mock, done := newPromptRepoWithMock(t)
	defer done()

	mock.ExpectExec("UPDATE prompts").
		WithArgs("missing", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RecordUse(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrPromptNotFound) {
		t.Fatalf("expected ErrPromptNotFound, got %v", err)
	}
}

func TestPromptPutUpserts(t *testing.T) {
	repo, mock, done := newPromptRepoWithMock(t)
	defer done()

	mock.ExpectExec("INSERT INTO prompts").
		WithArgs("roadmap", "nuovo contenuto", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Put(context.Background(), "roadmap", "nuovo contenuto"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
