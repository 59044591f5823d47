package document

import "fmt"

// Document is a validated, immutable record ready to be stored.
type Document struct {
	title    string
	content  string
	category Category
}

// New validates the category and creates a Document.
// Title and content are free text and may be empty.
func New(title, content string, category Category) (Document, error) {
	if !category.IsValid() {
		return Document{}, fmt.Errorf("unknown category %q", category)
	}
	return Document{title: title, content: content, category: category}, nil
}

// Title returns the document title.
func (d Document) Title() string { return d.title }

// Content returns the document body.
func (d Document) Content() string { return d.content }

// Category returns the document category.
func (d Document) Category() Category { return d.category }

// Candidate is an unvalidated document as supplied by a caller.
type Candidate struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

// Document validates the candidate.
func (c Candidate) Document() (Document, error) {
	cat, err := ParseCategory(c.ContentType)
	if err != nil {
		return Document{}, err
	}
	return New(c.Title, c.Content, cat)
}
