package document

import (
	"strings"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"article", CategoryArticle, false},
		{"blog", CategoryBlog, false},
		{"news", CategoryNews, false},
		{"faq", CategoryFAQ, false},
		{"FAQ", "", true},
		{"", "", true},
		{"bogus", "", true},
		{" news", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCategory(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCategory(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCategories_Order(t *testing.T) {
	if got := strings.Join(CategoryNames(), ","); got != "article,blog,news,faq" {
		t.Errorf("CategoryNames() = %s", got)
	}
	cats := Categories()
	cats[0] = "mutated"
	if Categories()[0] != CategoryArticle {
		t.Error("Categories must return a copy")
	}
}

func TestNew(t *testing.T) {
	d, err := New("Статья о поиске", "текст", CategoryArticle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Title() != "Статья о поиске" || d.Content() != "текст" || d.Category() != CategoryArticle {
		t.Errorf("unexpected document: %+v", d)
	}

	if _, err := New("t", "c", Category("other")); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestNew_EmptyTextAllowed(t *testing.T) {
	if _, err := New("", "", CategoryBlog); err != nil {
		t.Errorf("empty title and content are free text: %v", err)
	}
}

func TestCandidate_Document(t *testing.T) {
	d, err := Candidate{Title: "t", Content: "c", ContentType: "faq"}.Document()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Category() != CategoryFAQ {
		t.Errorf("category = %q", d.Category())
	}

	if _, err := (Candidate{Title: "t", ContentType: "invalid"}).Document(); err == nil {
		t.Error("expected error for invalid content_type")
	}
}

func TestSeedSet(t *testing.T) {
	set := SeedSet()
	if len(set) != 5 {
		t.Fatalf("seed set size = %d, want 5", len(set))
	}
	want := []Category{CategoryNews, CategoryFAQ, CategoryArticle, CategoryBlog, CategoryFAQ}
	for i, c := range set {
		d, err := c.Document()
		if err != nil {
			t.Fatalf("seed %d invalid: %v", i, err)
		}
		if d.Category() != want[i] {
			t.Errorf("seed %d category = %q, want %q", i, d.Category(), want[i])
		}
	}
	if set[2].Title != "Статья о поиске" {
		t.Errorf("seed 2 title = %q", set[2].Title)
	}
}
