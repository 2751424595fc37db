package document

import (
	"context"
	"fmt"
	"time"

	"github.com/transwerk/personal-backend-go/internal/domain/document"
	"github.com/transwerk/personal-backend-go/internal/domain/employee"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewDocumentService(documentRepository document.DocumentRepository, employeeRepository employee.EmployeeRepository) document.DocumentService {
	return &DocumentServiceImpl{
		DocumentRepository: documentRepository,
		EmployeeRepository: employeeRepository,
		now:                time.Now,
	}
}

// ListDocuments implements document.DocumentService.
func (s *DocumentServiceImpl) ListDocuments(ctx context.Context) ([]document.DocumentResponse, error) {
	documents, err := s.DocumentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return s.toResponses(documents), nil
}

// ListByEmployee implements document.DocumentService.
func (s *DocumentServiceImpl) ListByEmployee(ctx context.Context, mitarbeiterID string) ([]document.DocumentResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, mitarbeiterID); err != nil {
		return nil, err
	}

	documents, err := s.DocumentRepository.ListByEmployee(ctx, mitarbeiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return s.toResponses(documents), nil
}

func (s *DocumentServiceImpl) toResponses(documents []document.Document) []document.DocumentResponse {
	today := s.now()
	responses := make([]document.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		responses = append(responses, document.ToResponse(d, today))
	}
	return responses
}

// CreateDocument implements document.DocumentService.
func (s *DocumentServiceImpl) CreateDocument(ctx context.Context, req document.CreateDocumentRequest) (document.DocumentResponse, error) {
	if err := req.Validate(); err != nil {
		return document.DocumentResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.MitarbeiterID)
	if err != nil {
		return document.DocumentResponse{}, err
	}

	typ := document.Dokumenttyp(req.Dokumenttyp)
	d := document.Document{
		MitarbeiterID: req.MitarbeiterID,
		Dokumenttyp:   typ,
		Dokumentname:  typ.Label(),
		Notizen:       req.Notizen,
		DateiInhalt:   req.DateiInhalt,
		DateiTyp:      req.DateiTyp,
	}
	if req.Dokumentname != nil && *req.Dokumentname != "" {
		d.Dokumentname = *req.Dokumentname
	}
	if req.Ablaufdatum != nil && *req.Ablaufdatum != "" {
		ablaufdatum, _ := time.Parse("2006-01-02", *req.Ablaufdatum)
		d.Ablaufdatum = &ablaufdatum
	}

	created, err := s.DocumentRepository.Create(ctx, d)
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to create document: %w", err)
	}

	name := e.FullName()
	created.MitarbeiterName = &name
	return document.ToResponse(created, s.now()), nil
}

// GetDocumentFile implements document.DocumentService.
func (s *DocumentServiceImpl) GetDocumentFile(ctx context.Context, id string) (string, string, error) {
	return s.DocumentRepository.GetFile(ctx, id)
}

// DeleteDocument implements document.DocumentService.
func (s *DocumentServiceImpl) DeleteDocument(ctx context.Context, id string) error {
	return s.DocumentRepository.Delete(ctx, id)
}
