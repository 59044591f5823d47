package embedded

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/russian"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// analyzer turns text into index terms: split on non-alphanumerics,
// lowercase, fold ё to е, then apply the language's Snowball stemmer.
type analyzer struct {
	stemmer func(word string, stemStopWords bool) string
}

func newAnalyzer(language string) *analyzer {
	switch language {
	case db.LanguageRussian:
		return &analyzer{stemmer: russian.Stem}
	case db.LanguageEnglish:
		return &analyzer{stemmer: english.Stem}
	default:
		return &analyzer{}
	}
}

func (a *analyzer) terms(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ReplaceAll(strings.ToLower(w), "ё", "е")
		out = append(out, a.stem(w))
	}
	return out
}

// stem leaves stop words untouched; the standard analyzer does not stem.
func (a *analyzer) stem(word string) string {
	if a.stemmer == nil {
		return word
	}
	if s := a.stemmer(word, false); s != "" {
		return s
	}
	return word
}
