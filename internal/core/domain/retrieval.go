package domain

// SearchFilter narrows retrieval to a company context and/or document type.
// Zero values for Threshold and Limit fall back to the caller's defaults.
type SearchFilter struct {
	CompanyContext string
	DocumentType   DocumentType
	Threshold      float64
	Limit          int
}

type RetrievedChunk struct {
	ChunkID      string       `json:"chunk_id"`
	DocumentID   string       `json:"document_id"`
	Title        string       `json:"title,omitempty"`
	Filename     string       `json:"filename"`
	DocumentType DocumentType `json:"document_type,omitempty"`
	Text         string       `json:"text"`
	ChunkIndex   int          `json:"chunk_index"`
	Similarity   float64      `json:"similarity"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Messages       []ChatMessage `json:"messages"`
	CompanyContext string        `json:"company_context,omitempty"`
}

type Answer struct {
	Text    string           `json:"text"`
	Sources []RetrievedChunk `json:"sources"`
}
