package domain

import (
	"io"
	"time"
)

type DocumentStatus string

const (
	StatusPending    DocumentStatus = "pending"
	StatusProcessing DocumentStatus = "processing"
	StatusCompleted  DocumentStatus = "completed"
	StatusFailed     DocumentStatus = "failed"
)

type DocumentType string

const (
	TypeCompanyProfile DocumentType = "company_profile"
	TypeCaseStudy      DocumentType = "case_study"
	TypeService        DocumentType = "service_description"
	TypeFAQ            DocumentType = "faq"
	TypeOther          DocumentType = "other"
)

type Document struct {
	ID             string         `json:"id"`
	Filename       string         `json:"filename"`
	MimeType       string         `json:"mime_type"`
	SizeBytes      int64          `json:"size_bytes"`
	StoragePath    string         `json:"storage_path"`
	Title          string         `json:"title,omitempty"`
	CompanyContext string         `json:"company_context,omitempty"`
	Type           DocumentType   `json:"document_type"`
	Tags           []string       `json:"tags,omitempty"`
	Status         DocumentStatus `json:"status"`
	Error          string         `json:"error,omitempty"`
	ChunkCount     int            `json:"chunk_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// DocumentChunk is the unit of embedding and retrieval. Chunks belong to
// exactly one document and are immutable after ingestion.
type DocumentChunk struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Index      int       `json:"index"`
	Text       string    `json:"text"`
	TokenCount int       `json:"token_count"`
	Keywords   []string  `json:"keywords,omitempty"`
	Entities   []string  `json:"entities,omitempty"`
	Embedding  []float32 `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentUpload carries an incoming file and its admin-supplied metadata.
type DocumentUpload struct {
	Filename       string
	MimeType       string
	SizeBytes      int64
	Title          string
	CompanyContext string
	Type           DocumentType
	Tags           []string
	Body           io.Reader
}

// TextChunk is a token-bounded slice produced by the chunker before
// keyword extraction and embedding.
type TextChunk struct {
	Text       string
	TokenCount int
}
