package document

import "context"

// DocumentService defines business logic for document operations
type DocumentService interface {
	// ListDocuments lists all documents with their expiry classification,
	// soonest expiry first.
	ListDocuments(ctx context.Context) ([]DocumentResponse, error)

	// ListByEmployee lists one employee's documents.
	ListByEmployee(ctx context.Context, mitarbeiterID string) ([]DocumentResponse, error)

	// CreateDocument stores a document with an optional inline file payload.
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error)

	// GetDocumentFile returns the inline payload and content type for preview.
	GetDocumentFile(ctx context.Context, id string) (inhalt string, typ string, err error)

	// DeleteDocument removes a document; replacement is delete-then-recreate.
	DeleteDocument(ctx context.Context, id string) error
}
