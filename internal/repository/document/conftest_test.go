package document

import (
	"context"
	"testing"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	addDocumentFn func(ctx context.Context, index string, fields map[string]string) (string, error)
}

func (m *mockStore) AddDocument(ctx context.Context, index string, fields map[string]string) (string, error) {
	if m.addDocumentFn != nil {
		return m.addDocumentFn(ctx, index, fields)
	}
	return "1", nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}
