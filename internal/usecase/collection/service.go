package collection

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/domain"
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	"github.com/kailas-cloud/docsearch/internal/logger"
)

// Service provisions collections.
type Service struct {
	repo Repository
	opts []domcol.Option
}

// New creates a collection service. opts apply to every collection it creates.
func New(repo Repository, opts ...domcol.Option) *Service {
	return &Service{repo: repo, opts: opts}
}

// Ensure creates the collection if it does not exist. It is idempotent:
// an existing collection, or one created concurrently by another caller,
// is left untouched.
func (s *Service) Ensure(ctx context.Context, name string) (domcol.Collection, error) {
	col, err := domcol.New(name, s.opts...)
	if err != nil {
		return domcol.Collection{}, fmt.Errorf("%w: %w", domain.ErrSchemaSetup, err)
	}

	exists, err := s.repo.Exists(ctx, name)
	if err != nil {
		return domcol.Collection{}, setupError("check collection", err)
	}
	if exists {
		return col, nil
	}

	if err := s.repo.Create(ctx, col); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return col, nil
		}
		return domcol.Collection{}, setupError("create collection", err)
	}

	logger.FromContext(ctx).Info("collection created",
		zap.String("collection", name),
		zap.String("language", col.Language()),
	)
	return col, nil
}

func setupError(step string, err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", step, err)
	}
	return fmt.Errorf("%s: %w: %w", step, domain.ErrSchemaSetup, err)
}
