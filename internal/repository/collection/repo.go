package collection

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docsearch/internal/db"
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	"github.com/kailas-cloud/docsearch/internal/repository"
)

// store is the consumer interface for collections (ISP).
type store interface {
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Repo implements usecase/collection.Repository.
type Repo struct {
	store store
}

// New creates a collection repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Exists reports whether the collection index is present.
func (r *Repo) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := r.store.IndexExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("index exists %s: %w", name, repository.Translate(err))
	}
	return ok, nil
}

// Create creates the collection index with the fixed document schema.
// Returns domain.ErrAlreadyExists if another creator got there first.
func (r *Repo) Create(ctx context.Context, col domcol.Collection) error {
	def, err := buildIndex(col)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	if err := r.store.CreateIndex(ctx, def); err != nil {
		return fmt.Errorf("create index %s: %w", col.Name(), repository.Translate(err))
	}
	return nil
}
