package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// AddDocument indexes fields under an OpenSearch-generated ID with
// refresh=true, so the document is searchable on return.
func (s *Store) AddDocument(ctx context.Context, index string, fields map[string]string) (string, error) {
	if len(fields) == 0 {
		return "", errors.New("at least one field is required")
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Index(ctx, opensearchapi.IndexReq{
		Index:  index,
		Body:   bytes.NewReader(raw),
		Params: opensearchapi.IndexParams{Refresh: "true"},
	})
	if err != nil {
		return "", classify(db.OpAddDocument, inspect(resp), err)
	}
	return resp.ID, nil
}
