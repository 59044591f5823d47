package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// Store operation metrics.
var (
	storeOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "store_operations_total",
			Help:      "Total number of indexed-store operations",
		},
		[]string{"driver", "op", "status"},
	)

	storeOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docsearch",
			Name:      "store_operation_duration_seconds",
			Help:      "Indexed-store operation duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"driver", "op"},
	)

	// DocumentsAdmittedTotal counts documents written by ingestion.
	DocumentsAdmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "documents_admitted_total",
			Help:      "Documents admitted into a collection",
		},
		[]string{"collection"},
	)

	// DocumentsSkippedTotal counts candidates rejected by ingestion.
	DocumentsSkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docsearch",
			Name:      "documents_skipped_total",
			Help:      "Candidates skipped during ingestion",
		},
		[]string{"collection", "reason"},
	)
)

func init() {
	prometheus.MustRegister(storeOperationsTotal)
	prometheus.MustRegister(storeOperationDuration)
	prometheus.MustRegister(DocumentsAdmittedTotal)
	prometheus.MustRegister(DocumentsSkippedTotal)
}

// InstrumentedStore decorates a db.Store with operation metrics.
type InstrumentedStore struct {
	db.Store
	driver string
}

// InstrumentStore wraps s; driver labels every series.
func InstrumentStore(s db.Store, driver string) *InstrumentedStore {
	return &InstrumentedStore{Store: s, driver: driver}
}

func (s *InstrumentedStore) observe(op string, start time.Time, err error) {
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, db.ErrUnavailable):
		status = "unavailable"
	case errors.Is(err, db.ErrIndexExists):
		status = "exists"
	default:
		status = "error"
	}
	storeOperationDuration.WithLabelValues(s.driver, op).Observe(time.Since(start).Seconds())
	storeOperationsTotal.WithLabelValues(s.driver, op, status).Inc()
}

// Ping records the ping latency.
func (s *InstrumentedStore) Ping(ctx context.Context) error {
	start := time.Now()
	err := s.Store.Ping(ctx)
	s.observe(db.OpPing, start, err)
	return err
}

// IndexExists records the existence check.
func (s *InstrumentedStore) IndexExists(ctx context.Context, name string) (bool, error) {
	start := time.Now()
	ok, err := s.Store.IndexExists(ctx, name)
	s.observe(db.OpIndexExists, start, err)
	return ok, err
}

// CreateIndex records index creation.
func (s *InstrumentedStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	start := time.Now()
	err := s.Store.CreateIndex(ctx, def)
	s.observe(db.OpCreateIndex, start, err)
	return err
}

// AddDocument records a document write.
func (s *InstrumentedStore) AddDocument(ctx context.Context, index string, fields map[string]string) (string, error) {
	start := time.Now()
	id, err := s.Store.AddDocument(ctx, index, fields)
	s.observe(db.OpAddDocument, start, err)
	return id, err
}

// SearchText records a query.
func (s *InstrumentedStore) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	start := time.Now()
	res, err := s.Store.SearchText(ctx, q)
	s.observe(db.OpSearch, start, err)
	return res, err
}
