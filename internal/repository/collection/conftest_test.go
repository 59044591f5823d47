package collection

import (
	"context"
	"testing"

	"github.com/kailas-cloud/docsearch/internal/db"
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	indexExistsFn func(ctx context.Context, name string) (bool, error)
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(ctx context.Context, name string) (bool, error) {
	if m.indexExistsFn != nil {
		return m.indexExistsFn(ctx, name)
	}
	return false, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

func mustCollection(t *testing.T, name string, opts ...domcol.Option) domcol.Collection {
	t.Helper()
	col, err := domcol.New(name, opts...)
	if err != nil {
		t.Fatalf("domcol.New: %v", err)
	}
	return col
}
