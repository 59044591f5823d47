package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStoreUnavailable signals that the indexed store cannot be reached or rejected the credentials.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrSchemaSetup signals that the collection could not be created.
	ErrSchemaSetup = errors.New("schema setup failed")
	// ErrIngestion signals that a document write was rejected mid-batch.
	ErrIngestion = errors.New("ingestion failed")
	// ErrInvalidCategory signals a category filter outside the allowed set.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidQuery signals an empty or malformed search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
)

// InvalidCategoryError wraps ErrInvalidCategory with the rejected value and the allowed set.
type InvalidCategoryError struct {
	Value   string
	Allowed []string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("%s %q: allowed values are %s", ErrInvalidCategory.Error(), e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidCategoryError) Unwrap() error { return ErrInvalidCategory }

// NewInvalidCategory creates an invalid category error.
func NewInvalidCategory(value string, allowed []string) error {
	return &InvalidCategoryError{Value: value, Allowed: append([]string(nil), allowed...)}
}
