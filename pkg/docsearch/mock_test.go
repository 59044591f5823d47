package docsearch

import (
	"context"

	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	"github.com/kailas-cloud/docsearch/internal/usecase/facade"
	healthuc "github.com/kailas-cloud/docsearch/internal/usecase/health"
)

// --- collectionUseCase mock ---

type mockCollectionUC struct {
	ensureFn func(ctx context.Context, name string) (domcol.Collection, error)
}

func (m *mockCollectionUC) Ensure(ctx context.Context, name string) (domcol.Collection, error) {
	return m.ensureFn(ctx, name)
}

// --- documentUseCase mock ---

type mockDocumentUC struct {
	admitFn func(ctx context.Context, col string, candidates []domdoc.Candidate) (int, error)
	seedFn  func(ctx context.Context, col string) (int, error)
}

func (m *mockDocumentUC) Admit(ctx context.Context, col string, candidates []domdoc.Candidate) (int, error) {
	return m.admitFn(ctx, col, candidates)
}

func (m *mockDocumentUC) Seed(ctx context.Context, col string) (int, error) {
	return m.seedFn(ctx, col)
}

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn func(ctx context.Context, col string, req request.Request) ([]result.Result, error)
}

func (m *mockSearchUC) Search(ctx context.Context, col string, req request.Request) ([]result.Result, error) {
	return m.searchFn(ctx, col, req)
}

// --- facadeUseCase mock ---

type mockFacadeUC struct {
	initFn   func(ctx context.Context) (facade.InitResult, error)
	seedFn   func(ctx context.Context) (facade.SeedResult, error)
	searchFn func(ctx context.Context, query, category string) ([]result.Result, error)
}

func (m *mockFacadeUC) Init(ctx context.Context) (facade.InitResult, error) { return m.initFn(ctx) }

func (m *mockFacadeUC) Seed(ctx context.Context) (facade.SeedResult, error) { return m.seedFn(ctx) }

func (m *mockFacadeUC) Search(ctx context.Context, query, category string) ([]result.Result, error) {
	return m.searchFn(ctx, query, category)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report { return m.report }

// --- helpers ---

func testClient(f facadeUseCase, coll collectionUseCase, docs documentUseCase, search searchUseCase) *Client {
	return &Client{
		collection: "articles_index",
		collSvc:    coll,
		docSvc:     docs,
		searchSvc:  search,
		facade:     f,
	}
}
