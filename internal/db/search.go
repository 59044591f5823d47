package db

// MatchType selects how per-field scores combine into a document score.
type MatchType string

const (
	// MatchBestFields scores a document by its single best (boosted) field.
	MatchBestFields MatchType = "best_fields"
)

// BoostedField is a text field with a score multiplier.
type BoostedField struct {
	Name  string
	Boost float64
}

// TermFilter restricts hits to documents whose keyword field equals Value.
// Filters never affect scores.
type TermFilter struct {
	Field string
	Value string
}

// TextQuery is the input for a relevance query.
type TextQuery struct {
	IndexName    string
	Query        string
	Fields       []BoostedField
	Type         MatchType
	Filters      []TermFilter
	Size         int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	ID     string
	Score  float64
	Fields map[string]string
}
