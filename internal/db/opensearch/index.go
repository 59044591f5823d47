package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// inspector is implemented by the typed opensearchapi responses.
type inspector interface {
	comparable
	Inspect() opensearchapi.Inspect
}

// inspect returns the raw response behind a typed one, or nil when the
// request never produced a response.
func inspect[T inspector](resp T) *opensearch.Response {
	var zero T
	if resp == zero {
		return nil
	}
	return resp.Inspect().Response
}

type indexBody struct {
	Settings indexSettings `json:"settings"`
	Mappings indexMappings `json:"mappings"`
}

type indexSettings struct {
	NumberOfShards   int `json:"number_of_shards"`
	NumberOfReplicas int `json:"number_of_replicas"`
}

type indexMappings struct {
	Properties map[string]fieldMapping `json:"properties"`
}

type fieldMapping struct {
	Type     string `json:"type"`
	Analyzer string `json:"analyzer,omitempty"`
}

// CreateIndex creates the index with its settings and mapping.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	body, err := buildIndexBody(def)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode index body: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Indices.Create(ctx, opensearchapi.IndicesCreateReq{
		Index: def.Name,
		Body:  bytes.NewReader(raw),
	})
	if err != nil {
		if errorType(err) == "resource_already_exists_exception" {
			return db.ErrIndexExists
		}
		return classify(db.OpCreateIndex, inspect(resp), err)
	}
	return nil
}

// IndexExists probes the index with HEAD; 404 means absent.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Indices.Exists(ctx, opensearchapi.IndicesExistsReq{Indices: []string{name}})
	closeBody(resp)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if err != nil {
		return false, classify(db.OpIndexExists, resp, err)
	}
	return true, nil
}

func buildIndexBody(def *db.IndexDefinition) (*indexBody, error) {
	if def == nil {
		return nil, errors.New("index definition is required")
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	props := make(map[string]fieldMapping, len(def.Fields))
	for _, f := range def.Fields {
		m := fieldMapping{Type: f.Type.String()}
		if f.Type == db.IndexFieldText && def.Language != "" && def.Language != db.LanguageStandard {
			m.Analyzer = def.Language
		}
		props[f.Name] = m
	}

	return &indexBody{
		Settings: indexSettings{
			NumberOfShards:   def.Shards,
			NumberOfReplicas: def.Replicas,
		},
		Mappings: indexMappings{Properties: props},
	}, nil
}
