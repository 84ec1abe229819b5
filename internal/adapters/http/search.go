package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

type searchRequest struct {
	Query          string  `json:"query"`
	CompanyContext string  `json:"company_context"`
	DocumentType   string  `json:"document_type"`
	Threshold      float64 `json:"threshold"`
	Limit          int     `json:"limit"`
}

func (req searchRequest) filter() domain.SearchFilter {
	return domain.SearchFilter{
		CompanyContext: req.CompanyContext,
		DocumentType:   domain.DocumentType(req.DocumentType),
		Threshold:      req.Threshold,
		Limit:          req.Limit,
	}
}

func (rt *Router) semanticSearch(w http.ResponseWriter, r *http.Request) {
	rt.handleSearch(w, r, "search", rt.search.Semantic)
}

func (rt *Router) hybridSearch(w http.ResponseWriter, r *http.Request) {
	rt.handleSearch(w, r, "search_hybrid", rt.search.Hybrid)
}

func (rt *Router) handleSearch(
	w http.ResponseWriter,
	r *http.Request,
	endpoint string,
	run func(ctx context.Context, query string, filter domain.SearchFilter) ([]domain.RetrievedChunk, error),
) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	results, err := run(r.Context(), req.Query, req.filter())
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordRAGObservation(rt.service, endpoint, len(results), time.Since(start))
	}
	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}
