package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/metodoinnova/ai-readiness/internal/core/domain"
	"github.com/metodoinnova/ai-readiness/internal/core/usecase"
)

// multipartOverhead leaves room for the multipart framing and text fields on
// top of the document size limit.
const multipartOverhead = 1 << 20

func (rt *Router) documents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		rt.uploadDocument(w, r)
	case http.MethodGet:
		rt.listDocuments(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, usecase.MaxUploadBytes+multipartOverhead)

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.ingest.Upload(r.Context(), domain.DocumentUpload{
		Filename:       fileHeader.Filename,
		MimeType:       fileHeader.Header.Get("Content-Type"),
		SizeBytes:      fileHeader.Size,
		Title:          r.FormValue("title"),
		CompanyContext: r.FormValue("company_context"),
		Type:           domain.DocumentType(r.FormValue("type")),
		Tags:           splitTags(r.FormValue("tags")),
		Body:           file,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, doc)
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := rt.repo.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (rt *Router) documentByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/documents/")
	if id == "" || strings.Contains(id, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "document id is required"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		doc, err := rt.repo.GetByID(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	case http.MethodDelete:
		rt.deleteDocument(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

// deleteDocument removes the database row first (chunks cascade with it) and
// then the stored file. A failed file removal is logged, not surfaced: the
// document is already gone from search.
func (rt *Router) deleteDocument(w http.ResponseWriter, r *http.Request, id string) {
	doc, err := rt.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := rt.repo.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	if err := rt.storage.Delete(r.Context(), doc.StoragePath); err != nil {
		slog.Warn("stored_file_not_removed", "document_id", id, "storage_path", doc.StoragePath, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
