package docsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
)

// CollectionService operates on one named collection.
type CollectionService struct {
	name      string
	collSvc   collectionUseCase
	docSvc    documentUseCase
	searchSvc searchUseCase
	obs       *observer
}

// Name returns the collection name.
func (s *CollectionService) Name() string { return s.name }

// Ensure creates the collection if it does not exist. Calling it again is a no-op.
func (s *CollectionService) Ensure(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.ensure", s.name, start, err) }()

	if _, err = s.collSvc.Ensure(ctx, s.name); err != nil {
		return fmt.Errorf("ensure collection: %w", err)
	}
	return nil
}

// Admit writes the documents one by one and returns how many were stored.
// Documents with an unknown content type are skipped without error. On a
// write failure the documents admitted so far stay in the collection.
func (s *CollectionService) Admit(ctx context.Context, docs []Document) (_ int, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.admit", s.name, start, err) }()

	n, err := s.docSvc.Admit(ctx, s.name, toCandidates(docs))
	s.obs.admitted(s.name, n)
	if err != nil {
		return n, fmt.Errorf("admit: %w", err)
	}
	return n, nil
}

// Search runs a ranked keyword query. An unknown content type yields an
// empty result rather than an error; an empty query fails with ErrInvalidQuery.
func (s *CollectionService) Search(
	ctx context.Context, query string, contentType ContentType,
) (_ []SearchResult, err error) {
	start := time.Now()
	defer func() { s.obs.observe("collection.search", s.name, start, err) }()

	req, err := request.New(query, string(contentType))
	if err != nil {
		return nil, fmt.Errorf("search: %w: %w", ErrInvalidQuery, err)
	}

	results, err := s.searchSvc.Search(ctx, s.name, req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return fromInternalResults(results), nil
}
