// Package httpadapter exposes the public API surface: document ingestion,
// retrieval, consultant chat, assessment scoring and prompt administration.
package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/metodoinnova/ai-readiness/internal/core/ports"
	"github.com/metodoinnova/ai-readiness/internal/observability/metrics"
)

type Router struct {
	service string

	ingest  ports.DocumentIngestor
	search  ports.SearchService
	chat    ports.ChatService
	assess  ports.AssessmentService
	prompts ports.PromptAdmin
	repo    ports.DocumentRepository
	storage ports.ObjectStorage

	metrics *metrics.HTTPServerMetrics
}

func NewRouter(
	service string,
	ingest ports.DocumentIngestor,
	search ports.SearchService,
	chat ports.ChatService,
	assess ports.AssessmentService,
	prompts ports.PromptAdmin,
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		service: service,
		ingest:  ingest,
		search:  search,
		chat:    chat,
		assess:  assess,
		prompts: prompts,
		repo:    repo,
		storage: storage,
		metrics: m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/documents", rt.documents)
	mux.HandleFunc("/v1/documents/", rt.documentByID)
	mux.HandleFunc("/v1/assessments", rt.submitAssessment)
	mux.HandleFunc("/v1/search", rt.semanticSearch)
	mux.HandleFunc("/v1/search/hybrid", rt.hybridSearch)
	mux.HandleFunc("/v1/chat", rt.chatCompletion)
	mux.HandleFunc("/v1/admin/prompts/", rt.promptAdmin)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.service, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}
