package document

import (
	"context"
	"fmt"

	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/repository"
)

// store is the consumer interface for documents (ISP).
type store interface {
	AddDocument(ctx context.Context, index string, fields map[string]string) (string, error)
}

// Repo implements usecase/document.Repository.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Add writes one document and returns its store ID. The document is
// searchable once Add returns.
func (r *Repo) Add(ctx context.Context, collectionName string, doc domdoc.Document) (string, error) {
	id, err := r.store.AddDocument(ctx, collectionName, buildFields(doc))
	if err != nil {
		return "", fmt.Errorf("add document to %s: %w", collectionName, repository.Translate(err))
	}
	return id, nil
}
