package docsearch

// ContentType is a document category.
type ContentType string

// Allowed content types.
const (
	ContentArticle ContentType = "article"
	ContentBlog    ContentType = "blog"
	ContentNews    ContentType = "news"
	ContentFAQ     ContentType = "faq"
)

// AnyContent disables the content type filter.
const AnyContent ContentType = ""

// Document is a candidate for admission. Documents with a content type
// outside the allowed set are skipped by Admit.
type Document struct {
	Title       string
	Content     string
	ContentType ContentType
}

// SearchResult is a single search hit.
type SearchResult struct {
	Title   string
	Snippet string  // first 50 characters of the content
	Score   float64 // engine relevance, results are sorted by it
}

// InitResult reports the collection that Init ensured.
type InitResult struct {
	Status     string
	Collection string
}

// SeedResult reports how many demo documents were admitted.
type SeedResult struct {
	Admitted int
}
