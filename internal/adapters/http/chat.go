package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

func (rt *Router) chatCompletion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req struct {
		Messages       []domain.ChatMessage `json:"messages"`
		CompanyContext string               `json:"company_context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	start := time.Now()
	answer, err := rt.chat.Chat(r.Context(), domain.ChatRequest{
		Messages:       req.Messages,
		CompanyContext: req.CompanyContext,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordRAGObservation(rt.service, "chat", len(answer.Sources), time.Since(start))
	}
	writeJSON(w, http.StatusOK, answer)
}
