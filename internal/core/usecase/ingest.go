package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
)

const MaxUploadBytes = 10 << 20

const (
	MimePDF       = "application/pdf"
	MimeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimePlainText = "text/plain"
)

var allowedMimeTypes = map[string]struct{}{
	MimePDF:       {},
	MimeDOCX:      {},
	MimePlainText: {},
}

type IngestDocumentUseCase struct {
	repo    ports.DocumentRepository
	storage ports.ObjectStorage
	queue   ports.MessageQueue
}

func NewIngestDocumentUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	queue ports.MessageQueue,
) *IngestDocumentUseCase {
	return &IngestDocumentUseCase{
		repo:    repo,
		storage: storage,
		queue:   queue,
	}
}

func (uc *IngestDocumentUseCase) Upload(ctx context.Context, upload domain.DocumentUpload) (*domain.Document, error) {
	// Validation happens before any storage or database work so a rejected
	// upload leaves no trace.
	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	storageKey := fmt.Sprintf("%s_%s", id, sanitizeFilename(upload.Filename))
	now := time.Now().UTC()

	if err := uc.storage.Save(ctx, storageKey, upload.Body); err != nil {
		return nil, fmt.Errorf("save to object storage: %w", err)
	}

	docType := upload.Type
	if docType == "" {
		docType = domain.TypeOther
	}
	tags := upload.Tags
	if tags == nil {
		tags = []string{}
	}

	doc := &domain.Document{
		ID:             id,
		Filename:       upload.Filename,
		MimeType:       normalizeMimeType(upload.MimeType),
		SizeBytes:      upload.SizeBytes,
		StoragePath:    storageKey,
		Title:          strings.TrimSpace(upload.Title),
		CompanyContext: strings.TrimSpace(upload.CompanyContext),
		Type:           docType,
		Tags:           tags,
		Status:         domain.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document metadata: %w", err)
	}

	if err := uc.queue.PublishDocumentUploaded(ctx, doc.ID); err != nil {
		return nil, fmt.Errorf("publish ingestion event: %w", err)
	}

	return doc, nil
}

func validateUpload(upload domain.DocumentUpload) error {
	if upload.SizeBytes <= 0 {
		return domain.WrapError(domain.ErrInvalidInput, "validate upload", fmt.Errorf("file is empty"))
	}
	if upload.SizeBytes > MaxUploadBytes {
		return domain.WrapError(domain.ErrInvalidInput, "validate upload",
			fmt.Errorf("file exceeds the %d MB limit", MaxUploadBytes>>20))
	}
	if _, ok := allowedMimeTypes[normalizeMimeType(upload.MimeType)]; !ok {
		return domain.WrapError(domain.ErrInvalidInput, "validate upload",
			fmt.Errorf("unsupported content type %q: accepted formats are PDF, DOCX and plain text", upload.MimeType))
	}
	return nil
}

func normalizeMimeType(mimeType string) string {
	mimeType = strings.TrimSpace(strings.ToLower(mimeType))
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= 'A' && r <= 'Z':
			return r
		case r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" {
		return "document.bin"
	}
	return base
}
