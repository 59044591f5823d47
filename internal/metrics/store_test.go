package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/docsearch/internal/db"
)

type fakeStore struct {
	err error
}

func (f *fakeStore) Ping(context.Context) error { return f.err }
func (f *fakeStore) Close() {}
func (f *fakeStore) WaitForReady(context.Context, time.Duration) error { return nil }
func (f *fakeStore) IndexExists(context.Context, string) (bool, error) {
	return f.err == nil, f.err
}
func (f *fakeStore) CreateIndex(context.Context, *db.IndexDefinition) error { return f.err }
func (f *fakeStore) AddDocument(context.Context, string, map[string]string) (string, error) {
	return "1", f.err
}
func (f *fakeStore) SearchText(context.Context, *db.TextQuery) (*db.SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &db.SearchResult{Total: 1}, nil
}

func TestInstrumentStore_PassesThrough(t *testing.T) {
	s := InstrumentStore(&fakeStore{}, "test-pass")

	id, err := s.AddDocument(context.Background(), "idx", map[string]string{"title": "t"})
	if err != nil || id != "1" {
		t.Fatalf("AddDocument = %q, %v", id, err)
	}
	res, err := s.SearchText(context.Background(), &db.TextQuery{})
	if err != nil || res.Total != 1 {
		t.Fatalf("SearchText = %+v, %v", res, err)
	}

	if v := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("test-pass", db.OpAddDocument, "ok")); v != 1 {
		t.Errorf("add_document ok = %f, want 1", v)
	}
	if v := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("test-pass", db.OpSearch, "ok")); v != 1 {
		t.Errorf("search ok = %f, want 1", v)
	}
}

func TestInstrumentStore_ErrorStatus(t *testing.T) {
	tests := []struct {
		driver string
		err    error
		status string
	}{
		{"test-unavail", fmt.Errorf("dial: %w", db.ErrUnavailable), "unavailable"},
		{"test-exists", db.ErrIndexExists, "exists"},
		{"test-other", errors.New("boom"), "error"},
	}
	for _, tc := range tests {
		t.Run(tc.status, func(t *testing.T) {
			s := InstrumentStore(&fakeStore{err: tc.err}, tc.driver)
			if err := s.CreateIndex(context.Background(), nil); !errors.Is(err, tc.err) {
				t.Fatalf("error not propagated: %v", err)
			}
			v := testutil.ToFloat64(storeOperationsTotal.WithLabelValues(tc.driver, db.OpCreateIndex, tc.status))
			if v != 1 {
				t.Errorf("create_index %s = %f, want 1", tc.status, v)
			}
		})
	}
}

func TestInstrumentStore_PingAndExists(t *testing.T) {
	s := InstrumentStore(&fakeStore{}, "test-ping")
	if err := s.Ping(context.Background()); err != nil {
		t.Fatal(err)
	}
	if ok, err := s.IndexExists(context.Background(), "idx"); err != nil || !ok {
		t.Fatalf("IndexExists = %v, %v", ok, err)
	}
	for _, op := range []string{db.OpPing, db.OpIndexExists} {
		if v := testutil.ToFloat64(storeOperationsTotal.WithLabelValues("test-ping", op, "ok")); v != 1 {
			t.Errorf("%s ok = %f, want 1", op, v)
		}
	}
}
