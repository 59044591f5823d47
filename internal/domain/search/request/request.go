package request

import (
	"errors"

	"github.com/kailas-cloud/docsearch/internal/domain/document"
)

// Request is a validated search query. The category filter is kept raw:
// callers decide whether an unknown value is an error or an empty result.
type Request struct {
	query    string
	category string
}

// New validates the query text: any non-empty string is accepted as is,
// including whitespace. An empty category means no filter.
func New(query, category string) (Request, error) {
	if query == "" {
		return Request{}, errors.New("query is required")
	}
	return Request{query: query, category: category}, nil
}

// Query returns the query text.
func (r Request) Query() string { return r.query }

// RawCategory returns the filter exactly as supplied.
func (r Request) RawCategory() string { return r.category }

// HasFilter reports whether a category filter was supplied.
func (r Request) HasFilter() bool { return r.category != "" }

// Category parses the filter. ok is false when no filter is set or the
// value is outside the allowed set.
func (r Request) Category() (cat document.Category, ok bool) {
	if r.category == "" {
		return "", false
	}
	c, err := document.ParseCategory(r.category)
	if err != nil {
		return "", false
	}
	return c, true
}
