package db

import (
	"errors"
	"strconv"
)

// IndexFieldType enumerates supported index field types.
type IndexFieldType int

const (
	// IndexFieldText is tokenized and scored.
	IndexFieldText IndexFieldType = iota
	// IndexFieldKeyword is stored verbatim for exact-match filtering only.
	IndexFieldKeyword
)

// String returns the OpenSearch mapping type name.
func (t IndexFieldType) String() string {
	switch t {
	case IndexFieldText:
		return "text"
	case IndexFieldKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// Analyzer languages understood by all drivers.
const (
	LanguageStandard = "standard"
	LanguageRussian  = "russian"
	LanguageEnglish  = "english"
)

// IndexField describes a single field in an index schema.
type IndexField struct {
	Name string
	Type IndexFieldType
}

// IndexDefinition is a complete index definition.
type IndexDefinition struct {
	Name     string
	Shards   int
	Replicas int
	Language string // analyzer for text fields; empty means standard
	Fields   []IndexField
}

// Field returns the field with the given name.
func (idx *IndexDefinition) Field(name string) (IndexField, bool) {
	for _, f := range idx.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return IndexField{}, false
}

// Validate checks that the index definition is well-formed.
func (idx *IndexDefinition) Validate() error {
	if idx.Name == "" {
		return errors.New("index name is required")
	}
	if !IsValidIdentifier(idx.Name) {
		return errors.New("index name contains invalid characters")
	}
	if len(idx.Fields) == 0 {
		return errors.New("at least one field is required")
	}
	if idx.Shards < 0 || idx.Replicas < 0 {
		return errors.New("shards and replicas must not be negative")
	}
	switch idx.Language {
	case "", LanguageStandard, LanguageRussian, LanguageEnglish:
	default:
		return errors.New("unsupported analyzer language: " + idx.Language)
	}

	seen := make(map[string]bool)
	for i := range idx.Fields {
		f := &idx.Fields[i]
		if f.Name == "" {
			return errors.New("field name is required at index " + strconv.Itoa(i))
		}
		if seen[f.Name] {
			return errors.New("duplicate field name: " + f.Name)
		}
		seen[f.Name] = true
	}

	return nil
}

// IsValidIdentifier returns true if s matches [a-z0-9_.-]+ (lowercase is required by OpenSearch).
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		isLower := r >= 'a' && r <= 'z'
		isDigit := r >= '0' && r <= '9'
		isSpecial := r == '_' || r == '.' || r == '-'
		if !isLower && !isDigit && !isSpecial {
			return false
		}
	}
	return true
}
