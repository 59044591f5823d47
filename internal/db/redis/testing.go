package redis

import "github.com/redis/rueidis"

// NewStoreForTest creates a Store with a pre-built client (for mock injection in tests).
func NewStoreForTest(c rueidis.Client) *Store {
	return &Store{client: c}
}
