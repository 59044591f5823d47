package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// AddDocument stores fields as a hash under "<index>:<uuid>". RediSearch
// indexes hashes synchronously, so the document is searchable on return.
func (s *Store) AddDocument(ctx context.Context, index string, fields map[string]string) (string, error) {
	if len(fields) == 0 {
		return "", errors.New("at least one field is required")
	}

	id := uuid.NewString()
	key := keyPrefix(index) + id

	cmd := s.b().Hset().Key(key).FieldValue()
	for k, v := range fields {
		cmd = cmd.FieldValue(k, v)
	}
	if err := s.do(ctx, cmd.Build()).Error(); err != nil {
		return "", classify(db.OpAddDocument, err)
	}
	return id, nil
}

func idFromKey(index, key string) string {
	return strings.TrimPrefix(key, keyPrefix(index))
}
