package document

import "context"

type DocumentRepository interface {
	// List returns all documents ordered by ablaufdatum ascending, documents
	// without an expiry date last. The file payload is not included.
	List(ctx context.Context) ([]Document, error)
	ListByEmployee(ctx context.Context, mitarbeiterID string) ([]Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	// GetFile returns the inline payload and its content type for preview.
	GetFile(ctx context.Context, id string) (inhalt string, typ string, err error)
	Create(ctx context.Context, d Document) (Document, error)
	// Documents have no update path; replacement is delete-then-recreate.
	Delete(ctx context.Context, id string) error
}
