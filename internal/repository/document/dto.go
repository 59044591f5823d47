package document

import (
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
)

// buildFields converts a domain Document into the stored field map.
func buildFields(doc domdoc.Document) map[string]string {
	return map[string]string{
		domcol.FieldTitle:       doc.Title(),
		domcol.FieldContent:     doc.Content(),
		domcol.FieldContentType: string(doc.Category()),
	}
}
