package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetFile(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &DocumentHandlerImpl{
		documentService: documentService,
	}
}

// List implements DocumentHandler. An optional filter narrows to expiring
// (warnung: critical or warning tier, already-expired excluded) or expired
// (abgelaufen) documents.
func (h *DocumentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	documents, err := h.documentService.ListDocuments(r.Context())
	if err != nil {
		slog.Error("ListDocuments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	switch r.URL.Query().Get("filter") {
	case "warnung":
		filtered := make([]document.DocumentResponse, 0, len(documents))
		for _, d := range documents {
			switch document.ExpiryStatus(d.Status) {
			case document.ExpiryCritical, document.ExpiryWarning:
				filtered = append(filtered, d)
			}
		}
		documents = filtered
	case "abgelaufen":
		filtered := make([]document.DocumentResponse, 0, len(documents))
		for _, d := range documents {
			if document.ExpiryStatus(d.Status) == document.ExpiryExpired {
				filtered = append(filtered, d)
			}
		}
		documents = filtered
	}

	response.Success(w, documents)
}

// Create implements DocumentHandler.
func (h *DocumentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req document.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDocument decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.documentService.CreateDocument(r.Context(), req)
	if err != nil {
		slog.Error("CreateDocument service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Document created successfully", created)
}

// GetFile implements DocumentHandler. The payload is returned as-is (a data
// URL) with its content type for inline preview.
func (h *DocumentHandlerImpl) GetFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	inhalt, typ, err := h.documentService.GetDocumentFile(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{
		"datei_inhalt": inhalt,
		"datei_typ":    typ,
	})
}

// Delete implements DocumentHandler.
func (h *DocumentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.documentService.DeleteDocument(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}
