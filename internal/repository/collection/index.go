package collection

import (
	"github.com/kailas-cloud/docsearch/internal/db"
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
)

// buildIndex maps a collection onto the store schema:
// title and content are analyzed text, content_type is an exact-match keyword.
func buildIndex(col domcol.Collection) (*db.IndexDefinition, error) {
	return db.NewIndex(col.Name()).
		Shards(col.Shards()).
		Replicas(col.Replicas()).
		Language(col.Language()).
		Text(domcol.FieldTitle).
		Text(domcol.FieldContent).
		Keyword(domcol.FieldContentType).
		Build()
}
