package db

import "errors"

// Sentinel errors for store operations.
var (
	ErrUnavailable   = errors.New("db: store unavailable")
	ErrIndexNotFound = errors.New("db: index not found")
	ErrIndexExists   = errors.New("db: index already exists")
)

// Op names used for error context and metrics labels.
const (
	OpPing        = "ping"
	OpIndexExists = "index_exists"
	OpCreateIndex = "create_index"
	OpAddDocument = "add_document"
	OpSearch      = "search"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
