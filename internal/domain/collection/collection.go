package collection

import (
	"fmt"
	"strings"
)

// Field names of the collection schema.
const (
	FieldTitle       = "title"
	FieldContent     = "content"
	FieldContentType = "content_type"
)

const (
	defaultShards   = 1
	defaultReplicas = 0
)

// Collection describes a named document collection and its index settings.
type Collection struct {
	name     string
	language string
	shards   int
	replicas int
}

// Option customizes a Collection.
type Option func(*Collection)

// WithLanguage sets the analyzer language for text fields.
func WithLanguage(lang string) Option {
	return func(c *Collection) { c.language = lang }
}

// WithShards overrides the shard count.
func WithShards(n int) Option {
	return func(c *Collection) { c.shards = n }
}

// WithReplicas overrides the replica count.
func WithReplicas(n int) Option {
	return func(c *Collection) { c.replicas = n }
}

// New validates and creates a Collection with one shard and no replicas.
func New(name string, opts ...Option) (Collection, error) {
	if strings.TrimSpace(name) == "" {
		return Collection{}, fmt.Errorf("collection name is required")
	}
	c := Collection{name: name, shards: defaultShards, replicas: defaultReplicas}
	for _, opt := range opts {
		opt(&c)
	}
	if c.shards < 1 {
		return Collection{}, fmt.Errorf("shards must be at least 1")
	}
	if c.replicas < 0 {
		return Collection{}, fmt.Errorf("replicas must not be negative")
	}
	return c, nil
}

// Name returns the collection identifier.
func (c Collection) Name() string { return c.name }

// Language returns the analyzer language.
func (c Collection) Language() string { return c.language }

// Shards returns the primary shard count.
func (c Collection) Shards() int { return c.shards }

// Replicas returns the replica count.
func (c Collection) Replicas() int { return c.replicas }
