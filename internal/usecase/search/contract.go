package search

import (
	"context"

	"github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
)

// Repository defines the storage contract for search.
type Repository interface {
	Search(
		ctx context.Context, collectionName, query string, category document.Category, limit int,
	) ([]result.Result, error)
}
