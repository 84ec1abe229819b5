package extractor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/ports"
	"github.com/metodoinnova/ai-readiness/internal/core/usecase"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/extractor/docxtext"
	"github.com/metodoinnova/ai-readiness/internal/infrastructure/extractor/pdftext"
)

// Extractor reads the stored source file and produces plain text, dispatching
// on the mime type recorded at upload.
type Extractor struct {
	storage ports.ObjectStorage
}

func New(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (string, error) {
	reader, err := e.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return "", fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read source document: %w", err)
	}

	switch doc.MimeType {
	case usecase.MimePDF:
		text, err := pdftext.Extract(raw)
		if err != nil {
			return "", fmt.Errorf("extract pdf text from %s: %w", doc.Filename, err)
		}
		return strings.TrimSpace(text), nil
	case usecase.MimeDOCX:
		text, err := docxtext.Extract(raw)
		if err != nil {
			return "", fmt.Errorf("extract docx text from %s: %w", doc.Filename, err)
		}
		return strings.TrimSpace(text), nil
	case usecase.MimePlainText:
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("file %s is not valid UTF-8 text", doc.Filename)
		}
		return strings.TrimSpace(string(raw)), nil
	default:
		return "", fmt.Errorf("no extractor for content type %s", doc.MimeType)
	}
}
