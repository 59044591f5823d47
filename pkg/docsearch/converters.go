package docsearch

import (
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
)

func toCandidates(docs []Document) []domdoc.Candidate {
	out := make([]domdoc.Candidate, len(docs))
	for i, d := range docs {
		out[i] = domdoc.Candidate{
			Title:       d.Title,
			Content:     d.Content,
			ContentType: string(d.ContentType),
		}
	}
	return out
}

func fromInternalResults(results []result.Result) []SearchResult {
	out := make([]SearchResult, len(results))
	for i, r := range results {
		out[i] = SearchResult{
			Title:   r.Title(),
			Snippet: r.Snippet(),
			Score:   r.Score(),
		}
	}
	return out
}
