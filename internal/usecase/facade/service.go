package facade

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docsearch/internal/domain"
	"github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
)

// StatusOK is the init status on success.
const StatusOK = "ok"

// InitResult reports a successful init.
type InitResult struct {
	Status     string
	Collection string
}

// SeedResult reports how many documents seed admitted.
type SeedResult struct {
	Admitted int
}

// Service exposes init, seed and search over the configured collection.
type Service struct {
	collection  string
	collections CollectionEnsurer
	seeder      Seeder
	searcher    Searcher
}

// New creates a facade bound to one collection name.
func New(collection string, collections CollectionEnsurer, seeder Seeder, searcher Searcher) *Service {
	return &Service{
		collection:  collection,
		collections: collections,
		seeder:      seeder,
		searcher:    searcher,
	}
}

// Collection returns the configured collection name.
func (s *Service) Collection() string { return s.collection }

// Init ensures the collection exists.
func (s *Service) Init(ctx context.Context) (InitResult, error) {
	if _, err := s.collections.Ensure(ctx, s.collection); err != nil {
		return InitResult{}, fmt.Errorf("init: %w", err)
	}
	return InitResult{Status: StatusOK, Collection: s.collection}, nil
}

// Seed ensures the collection and admits the demo corpus.
func (s *Service) Seed(ctx context.Context) (SeedResult, error) {
	if _, err := s.collections.Ensure(ctx, s.collection); err != nil {
		return SeedResult{}, fmt.Errorf("seed: %w", err)
	}
	n, err := s.seeder.Seed(ctx, s.collection)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed: %w", err)
	}
	return SeedResult{Admitted: n}, nil
}

// Search validates the query and the category filter, ensures the
// collection, then searches. Unlike the search service, an unknown
// category is rejected with *domain.InvalidCategoryError.
func (s *Service) Search(ctx context.Context, query, category string) ([]result.Result, error) {
	req, err := request.New(query, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	if _, ok := req.Category(); req.HasFilter() && !ok {
		return nil, domain.NewInvalidCategory(category, document.CategoryNames())
	}

	if _, err := s.collections.Ensure(ctx, s.collection); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results, err := s.searcher.Search(ctx, s.collection, req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}
