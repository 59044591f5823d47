package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
)

type searchBody struct {
	Size   int         `json:"size"`
	Source []string    `json:"_source,omitempty"`
	Query  searchQuery `json:"query"`
}

type searchQuery struct {
	Bool boolQuery `json:"bool"`
}

type boolQuery struct {
	Must   []map[string]any `json:"must"`
	Filter []map[string]any `json:"filter,omitempty"`
}

// SearchText runs a bool query: multi_match in must (scoring) and term
// filters in filter (non-scoring).
func (s *Store) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	body, err := buildSearchBody(q)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode search body: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{q.IndexName},
		Body:    bytes.NewReader(raw),
	})
	if err != nil {
		return nil, classify(db.OpSearch, inspect(resp), err)
	}

	entries := make([]db.SearchEntry, 0, len(resp.Hits.Hits))
	for _, h := range resp.Hits.Hits {
		var source map[string]any
		if len(h.Source) > 0 {
			if err := json.Unmarshal(h.Source, &source); err != nil {
				return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("decode hit %s: %w", h.ID, err)}
			}
		}
		fields := make(map[string]string, len(source))
		for k, v := range source {
			fields[k] = stringify(v)
		}
		entries = append(entries, db.SearchEntry{
			ID:     h.ID,
			Score:  float64(h.Score),
			Fields: fields,
		})
	}

	return &db.SearchResult{Total: resp.Hits.Total.Value, Entries: entries}, nil
}

func buildSearchBody(q *db.TextQuery) (*searchBody, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if q.Size <= 0 {
		return nil, fmt.Errorf("size must be positive")
	}
	if len(q.Fields) == 0 {
		return nil, fmt.Errorf("at least one field is required")
	}

	matchType := q.Type
	if matchType == "" {
		matchType = db.MatchBestFields
	}

	fields := make([]string, 0, len(q.Fields))
	for _, f := range q.Fields {
		fields = append(fields, boostedName(f))
	}

	body := &searchBody{
		Size:   q.Size,
		Source: q.ReturnFields,
		Query: searchQuery{Bool: boolQuery{
			Must: []map[string]any{{
				"multi_match": map[string]any{
					"query":  q.Query,
					"fields": fields,
					"type":   string(matchType),
				},
			}},
		}},
	}
	for _, f := range q.Filters {
		body.Query.Bool.Filter = append(body.Query.Bool.Filter, map[string]any{
			"term": map[string]any{f.Field: f.Value},
		})
	}
	return body, nil
}

func boostedName(f db.BoostedField) string {
	if f.Boost == 0 || f.Boost == 1 {
		return f.Name
	}
	return f.Name + "^" + strconv.FormatFloat(f.Boost, 'f', -1, 64)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
