package embedded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/docsearch/internal/db"
)

func TestAnalyzer_Russian_InflectionsShareStem(t *testing.T) {
	an := newAnalyzer(db.LanguageRussian)

	groups := [][]string{
		{"поиск", "поиске", "поиска", "поиском", "Поиску"},
		{"статья", "статьи", "статье", "статьей"},
		{"пароль", "пароля", "паролем"},
		{"новость", "новости", "новостями"},
	}
	for _, forms := range groups {
		t.Run(forms[0], func(t *testing.T) {
			want := an.terms(forms[0])
			require.Len(t, want, 1)
			for _, f := range forms[1:] {
				assert.Equal(t, want, an.terms(f), "form %q", f)
			}
		})
	}
}

func TestAnalyzer_Russian_StemValue(t *testing.T) {
	an := newAnalyzer(db.LanguageRussian)
	assert.Equal(t, []string{"поиск"}, an.terms("поиске"))
}

func TestAnalyzer_FoldsYo(t *testing.T) {
	an := newAnalyzer(db.LanguageRussian)
	assert.Equal(t, an.terms("елка"), an.terms("ёлка"))
}

func TestAnalyzer_SplitsPunctuation(t *testing.T) {
	an := newAnalyzer(db.LanguageStandard)
	assert.Equal(t, []string{"faq", "учетная", "запись"}, an.terms("FAQ: учетная запись"))
}

func TestAnalyzer_StandardDoesNotStem(t *testing.T) {
	an := newAnalyzer("")
	assert.Equal(t, []string{"поиске"}, an.terms("поиске"))
}

func TestAnalyzer_English(t *testing.T) {
	an := newAnalyzer(db.LanguageEnglish)
	assert.Equal(t, []string{"index", "search"}, an.terms("indexes searching"))
	assert.Equal(t, an.terms("index search"), an.terms("Indexes, searching"))
}

func TestAnalyzer_Empty(t *testing.T) {
	an := newAnalyzer(db.LanguageRussian)
	assert.Empty(t, an.terms(" ?! "))
}
