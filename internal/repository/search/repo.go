package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/kailas-cloud/docsearch/internal/db"
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	"github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	"github.com/kailas-cloud/docsearch/internal/repository"
)

// TitleBoost weights title matches over content matches.
const TitleBoost = 2

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store store
}

// New creates a search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Search runs a best-fields match over title (boosted) and content, with an
// optional exact category filter. An empty category means no filter.
func (r *Repo) Search(
	ctx context.Context, collectionName, query string, category document.Category, limit int,
) ([]result.Result, error) {
	q := &db.TextQuery{
		IndexName: collectionName,
		Query:     query,
		Fields: []db.BoostedField{
			{Name: domcol.FieldTitle, Boost: TitleBoost},
			{Name: domcol.FieldContent, Boost: 1},
		},
		Type:         db.MatchBestFields,
		Size:         limit,
		ReturnFields: []string{domcol.FieldTitle, domcol.FieldContent},
	}
	if category != "" {
		q.Filters = []db.TermFilter{{Field: domcol.FieldContentType, Value: string(category)}}
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", collectionName, repository.Translate(err))
	}

	return parseResults(sr, limit), nil
}

func parseResults(sr *db.SearchResult, limit int) []result.Result {
	if sr == nil {
		return []result.Result{}
	}
	entries := append([]db.SearchEntry(nil), sr.Entries...)
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]result.Result, 0, len(entries))
	for _, e := range entries {
		out = append(out, result.New(e.Fields[domcol.FieldTitle], e.Fields[domcol.FieldContent], e.Score))
	}
	return out
}
