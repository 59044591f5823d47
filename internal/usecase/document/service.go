package document

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/domain"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/logger"
	"github.com/kailas-cloud/docsearch/internal/metrics"
)

// Service admits documents into collections.
type Service struct {
	repo Repository
}

// New creates a document service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Admit validates each candidate and writes the valid ones one at a time,
// in order. Candidates with an unknown category are skipped and not counted.
// The first write failure stops the batch; documents already written stay.
func (s *Service) Admit(ctx context.Context, collectionName string, candidates []domdoc.Candidate) (int, error) {
	if collectionName == "" {
		return 0, fmt.Errorf("%w: collection name is required", domain.ErrIngestion)
	}
	log := logger.FromContext(ctx)

	admitted := 0
	for i, c := range candidates {
		doc, err := c.Document()
		if err != nil {
			log.Debug("candidate skipped",
				zap.Int("position", i),
				zap.String("content_type", c.ContentType),
				zap.Error(err),
			)
			metrics.DocumentsSkippedTotal.WithLabelValues(collectionName, "invalid_category").Inc()
			continue
		}

		id, err := s.repo.Add(ctx, collectionName, doc)
		if err != nil {
			return admitted, ingestionError(i, err)
		}
		admitted++
		metrics.DocumentsAdmittedTotal.WithLabelValues(collectionName).Inc()
		log.Debug("document admitted", zap.Int("position", i), zap.String("id", id))
	}

	return admitted, nil
}

// Seed admits the fixed demo corpus. Repeated calls add duplicates.
func (s *Service) Seed(ctx context.Context, collectionName string) (int, error) {
	return s.Admit(ctx, collectionName, domdoc.SeedSet())
}

func ingestionError(position int, err error) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return fmt.Errorf("admit document %d: %w", position, err)
	}
	return fmt.Errorf("admit document %d: %w: %w", position, domain.ErrIngestion, err)
}
