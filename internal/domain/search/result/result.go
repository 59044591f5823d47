package result

// SnippetLength is the snippet size in characters (Unicode code points).
const SnippetLength = 50

// Result is a single search hit projected to title and snippet.
type Result struct {
	title   string
	snippet string
	score   float64
}

// New creates a result from a hit's full content.
func New(title, content string, score float64) Result {
	return Result{title: title, snippet: Snippet(content), score: score}
}

// Title returns the document title.
func (r Result) Title() string { return r.title }

// Snippet returns the leading part of the content.
func (r Result) Snippet() string { return r.snippet }

// Score returns the engine relevance score.
func (r Result) Score() float64 { return r.score }

// Snippet returns the first SnippetLength code points of content.
func Snippet(content string) string {
	n := 0
	for i := range content {
		if n == SnippetLength {
			return content[:i]
		}
		n++
	}
	return content
}
