package document

import (
	"context"

	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Add(ctx context.Context, collectionName string, doc domdoc.Document) (string, error)
}
