package search

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	"github.com/kailas-cloud/docsearch/internal/logger"
)

// Limit is the maximum number of hits returned by a search.
const Limit = 50

// Service runs ranked keyword search over a collection.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search returns up to Limit hits ordered by score. A category filter
// outside the allowed set matches nothing, so the result is empty.
func (s *Service) Search(ctx context.Context, collectionName string, req request.Request) ([]result.Result, error) {
	cat, ok := req.Category()
	if req.HasFilter() && !ok {
		logger.FromContext(ctx).Debug("unknown category filter, empty result",
			zap.String("content_type", req.RawCategory()),
		)
		return []result.Result{}, nil
	}

	results, err := s.repo.Search(ctx, collectionName, req.Query(), cat, Limit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}
