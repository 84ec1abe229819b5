package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
)

func (rt *Router) submitAssessment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var resp domain.AssessmentResponse
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(resp.CompanyName) == "" || strings.TrimSpace(resp.Email) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "company_name and email are required"})
		return
	}

	result, err := rt.assess.Submit(r.Context(), resp)
	if err != nil {
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordAssessment(rt.service, string(result.Cluster), result.SummaryFallback)
	}
	writeJSON(w, http.StatusOK, result)
}
