package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
)

func (rt *Router) promptAdmin(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/v1/admin/prompts/")
	if name == "" || strings.Contains(name, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prompt name is required"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		prompt, err := rt.prompts.Get(r.Context(), name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, prompt)
	case http.MethodPut:
		var req struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
			return
		}

		prompt, err := rt.prompts.Update(r.Context(), name, req.Content)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, prompt)
	default:
		methodNotAllowed(w)
	}
}
