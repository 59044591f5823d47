package db

import (
	"errors"
	"testing"
)

func TestIndexBuilder_Simple(t *testing.T) {
	idx := NewIndex("articles_index").
		Text("title").
		Text("content").
		Keyword("content_type").
		MustBuild()

	if idx.Name != "articles_index" {
		t.Errorf("name = %q, want articles_index", idx.Name)
	}
	if idx.Shards != 1 || idx.Replicas != 0 {
		t.Errorf("shards/replicas = %d/%d, want 1/0", idx.Shards, idx.Replicas)
	}
	if len(idx.Fields) != 3 {
		t.Fatalf("fields count = %d, want 3", len(idx.Fields))
	}
	if f, ok := idx.Field("content_type"); !ok || f.Type != IndexFieldKeyword {
		t.Errorf("content_type = %+v, want KEYWORD", f)
	}
	if f, ok := idx.Field("title"); !ok || f.Type != IndexFieldText {
		t.Errorf("title = %+v, want TEXT", f)
	}
	if _, ok := idx.Field("missing"); ok {
		t.Error("unexpected field 'missing'")
	}
}

func TestIndexBuilder_Settings(t *testing.T) {
	idx := NewIndex("idx").Shards(3).Replicas(2).Language(LanguageRussian).Text("t").MustBuild()
	if idx.Shards != 3 || idx.Replicas != 2 {
		t.Errorf("shards/replicas = %d/%d, want 3/2", idx.Shards, idx.Replicas)
	}
	if idx.Language != LanguageRussian {
		t.Errorf("language = %q, want russian", idx.Language)
	}
}

func TestIndexBuilder_BuildCopiesFields(t *testing.T) {
	b := NewIndex("idx").Text("a")
	first := b.MustBuild()
	b.Text("b")
	if len(first.Fields) != 1 {
		t.Errorf("built definition mutated by builder: %d fields", len(first.Fields))
	}
}

func TestIndexDefinition_Validate(t *testing.T) {
	tests := []struct {
		name string
		def  IndexDefinition
	}{
		{"empty name", IndexDefinition{Fields: []IndexField{{Name: "a"}}}},
		{"uppercase name", IndexDefinition{Name: "Idx", Fields: []IndexField{{Name: "a"}}}},
		{"no fields", IndexDefinition{Name: "idx"}},
		{"empty field name", IndexDefinition{Name: "idx", Fields: []IndexField{{Name: ""}}}},
		{"duplicate field", IndexDefinition{Name: "idx", Fields: []IndexField{{Name: "a"}, {Name: "a"}}}},
		{"negative replicas", IndexDefinition{Name: "idx", Replicas: -1, Fields: []IndexField{{Name: "a"}}}},
		{"unknown language", IndexDefinition{Name: "idx", Language: "elvish", Fields: []IndexField{{Name: "a"}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.def.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestIndexBuilder_BuildError(t *testing.T) {
	if _, err := NewIndex("").Text("a").Build(); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"articles_index", true},
		{"news-2024.v1", true},
		{"", false},
		{"Articles", false},
		{"a b", false},
		{"a:b", false},
	}
	for _, tc := range tests {
		if got := IsValidIdentifier(tc.s); got != tc.want {
			t.Errorf("IsValidIdentifier(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestIndexFieldType_String(t *testing.T) {
	if IndexFieldText.String() != "text" || IndexFieldKeyword.String() != "keyword" {
		t.Errorf("unexpected names: %s, %s", IndexFieldText, IndexFieldKeyword)
	}
}

func TestError_Unwrap(t *testing.T) {
	err := &Error{Op: OpSearch, Err: ErrUnavailable}
	if !errors.Is(err, ErrUnavailable) {
		t.Error("db.Error must unwrap to the underlying error")
	}
	if err.Error() != "search: db: store unavailable" {
		t.Errorf("Error() = %q", err.Error())
	}
}
