package facade

import (
	"context"

	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
)

// CollectionEnsurer provisions the collection.
type CollectionEnsurer interface {
	Ensure(ctx context.Context, name string) (domcol.Collection, error)
}

// Seeder loads the demo corpus.
type Seeder interface {
	Seed(ctx context.Context, collectionName string) (int, error)
}

// Searcher runs ranked queries.
type Searcher interface {
	Search(ctx context.Context, collectionName string, req request.Request) ([]result.Result, error)
}
