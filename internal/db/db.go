package db

import (
	"context"
	"time"
)

// Store is the indexed-store gateway combining all sub-interfaces.
// Implementations must be safe for concurrent use.
type Store interface {
	Pinger
	IndexManager
	DocumentWriter
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IndexManager provides index lifecycle operations.
type IndexManager interface {
	// CreateIndex returns ErrIndexExists if the index is already present.
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// DocumentWriter admits documents into an index.
type DocumentWriter interface {
	// AddDocument stores fields under a store-generated ID. The document is
	// searchable once AddDocument returns.
	AddDocument(ctx context.Context, index string, fields map[string]string) (string, error)
}

// Searcher runs relevance queries over an index.
type Searcher interface {
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
}
