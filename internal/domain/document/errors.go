package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrNoFileAttached   = errors.New("document has no file attached")
)
