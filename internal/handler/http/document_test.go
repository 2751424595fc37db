package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transwerk/personal-backend-go/internal/domain/document"
)

type stubDocumentService struct {
	documents []document.DocumentResponse
}

func (s *stubDocumentService) ListDocuments(ctx context.Context) ([]document.DocumentResponse, error) {
	return s.documents, nil
}

func (s *stubDocumentService) ListByEmployee(ctx context.Context, mitarbeiterID string) ([]document.DocumentResponse, error) {
	return nil, nil
}

func (s *stubDocumentService) CreateDocument(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	return document.DocumentResponse{}, nil
}

func (s *stubDocumentService) GetDocumentFile(ctx context.Context, id string) (string, string, error) {
	return "", "", document.ErrNoFileAttached
}

func (s *stubDocumentService) DeleteDocument(ctx context.Context, id string) error {
	return nil
}

func listDocuments(t *testing.T, handler DocumentHandler, filter string) []document.DocumentResponse {
	t.Helper()

	target := "/dokumente"
	if filter != "" {
		target += "?filter=" + filter
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []document.DocumentResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Data
}

func TestDocumentList_Filter(t *testing.T) {
	handler := NewDocumentHandler(&stubDocumentService{documents: []document.DocumentResponse{
		{ID: "doc-expired", Status: string(document.ExpiryExpired)},
		{ID: "doc-critical", Status: string(document.ExpiryCritical)},
		{ID: "doc-warning", Status: string(document.ExpiryWarning)},
		{ID: "doc-ok", Status: string(document.ExpiryValid)},
		{ID: "doc-none", Status: string(document.ExpiryNone)},
	}})

	all := listDocuments(t, handler, "")
	assert.Len(t, all, 5)

	// Expired documents live in their own bucket, not among the expiring.
	warnung := listDocuments(t, handler, "warnung")
	var warnungIDs []string
	for _, d := range warnung {
		warnungIDs = append(warnungIDs, d.ID)
	}
	assert.Equal(t, []string{"doc-critical", "doc-warning"}, warnungIDs)

	abgelaufen := listDocuments(t, handler, "abgelaufen")
	require.Len(t, abgelaufen, 1)
	assert.Equal(t, "doc-expired", abgelaufen[0].ID)
}
