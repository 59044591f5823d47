package collection

import (
	"context"

	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
)

// Repository defines the storage contract for collections.
type Repository interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, col domcol.Collection) error
}
