package document

import "fmt"

// Category classifies a document. The set is closed.
type Category string

// Allowed categories, in their canonical order.
const (
	CategoryArticle Category = "article"
	CategoryBlog    Category = "blog"
	CategoryNews    Category = "news"
	CategoryFAQ     Category = "faq"
)

var categories = []Category{CategoryArticle, CategoryBlog, CategoryNews, CategoryFAQ}

// Categories returns the allowed categories in canonical order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// CategoryNames returns the allowed category values as strings.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return names
}

// IsValid checks membership in the allowed set. Matching is exact and case-sensitive.
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory converts a raw value into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
