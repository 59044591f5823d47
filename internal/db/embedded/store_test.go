package embedded

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/docsearch/internal/db"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(Config{Path: filepath.Join(t.TempDir(), "docsearch.db")})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func articlesIndex() *db.IndexDefinition {
	return db.NewIndex("articles_index").
		Language(db.LanguageRussian).
		Text("title").
		Text("content").
		Keyword("content_type").
		MustBuild()
}

func textQuery(query string, filters ...db.TermFilter) *db.TextQuery {
	return &db.TextQuery{
		IndexName: "articles_index",
		Query:     query,
		Fields: []db.BoostedField{
			{Name: "title", Boost: 2},
			{Name: "content", Boost: 1},
		},
		Type:         db.MatchBestFields,
		Filters:      filters,
		Size:         50,
		ReturnFields: []string{"title", "content"},
	}
}

func add(t *testing.T, s *Store, title, content, category string) string {
	t.Helper()
	id, err := s.AddDocument(context.Background(), "articles_index", map[string]string{
		"title":        title,
		"content":      content,
		"content_type": category,
	})
	require.NoError(t, err)
	return id
}

func TestNewStore_EmptyPath(t *testing.T) {
	_, err := NewStore(Config{})
	require.Error(t, err)
}

func TestPing(t *testing.T) {
	s, err := NewStore(Config{Path: filepath.Join(t.TempDir(), "p.db")})
	require.NoError(t, err)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.WaitForReady(context.Background(), 0))

	s.Close()
	assert.ErrorIs(t, s.Ping(context.Background()), db.ErrUnavailable)
}

func TestCreateIndex(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	exists, err := s.IndexExists(ctx, "articles_index")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.CreateIndex(ctx, articlesIndex()))

	exists, err = s.IndexExists(ctx, "articles_index")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, s.CreateIndex(ctx, articlesIndex()), db.ErrIndexExists)
}

func TestCreateIndex_Invalid(t *testing.T) {
	s := openStore(t)
	require.Error(t, s.CreateIndex(context.Background(), nil))
	require.Error(t, s.CreateIndex(context.Background(), &db.IndexDefinition{Name: "x"}))
}

func TestAddDocument_IndexMissing(t *testing.T) {
	s := openStore(t)
	_, err := s.AddDocument(context.Background(), "articles_index", map[string]string{"title": "t"})
	assert.ErrorIs(t, err, db.ErrIndexNotFound)
}

func TestAddDocument_SequentialIDs(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))
	assert.Equal(t, "1", add(t, s, "a", "b", "news"))
	assert.Equal(t, "2", add(t, s, "a", "b", "news"))
}

func TestAddDocument_Concurrent(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.AddDocument(context.Background(), "articles_index", map[string]string{
				"title": "поиск", "content": "текст", "content_type": "blog",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	res, err := s.SearchText(context.Background(), textQuery("поиск"))
	require.NoError(t, err)
	assert.Equal(t, 8, res.Total)
}

func TestSearchText_ImmediateVisibility(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))

	add(t, s, "Статья о поиске", "Поисковые системы используют индексы для быстрого поиска по тексту.", "article")

	res, err := s.SearchText(context.Background(), textQuery("поиск"))
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "Статья о поиске", res.Entries[0].Fields["title"])
	assert.Positive(t, res.Entries[0].Score)
}

func TestSearchText_TitleWeighting(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))

	inContent := add(t, s, "Заметка", "Слово дельта встречается в тексте", "blog")
	inTitle := add(t, s, "Дельта", "Заметка без ключевого слова тут", "blog")

	res, err := s.SearchText(context.Background(), textQuery("дельта"))
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, inTitle, res.Entries[0].ID)
	assert.Equal(t, inContent, res.Entries[1].ID)
	assert.Greater(t, res.Entries[0].Score, res.Entries[1].Score)
}

func TestSearchText_FilterIsHardConstraint(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))

	add(t, s, "Статья о поиске", "про поиск", "article")
	faq := add(t, s, "Вопросы", "как работает поиск", "faq")

	res, err := s.SearchText(context.Background(), textQuery("поиск", db.TermFilter{Field: "content_type", Value: "faq"}))
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, faq, res.Entries[0].ID)

	res, err = s.SearchText(context.Background(), textQuery("поиск", db.TermFilter{Field: "content_type", Value: "news"}))
	require.NoError(t, err)
	assert.Empty(t, res.Entries)
}

func TestSearchText_TiesKeepInsertionOrder(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))

	first := add(t, s, "одинаковый", "текст", "news")
	second := add(t, s, "одинаковый", "текст", "news")

	for i := 0; i < 3; i++ {
		res, err := s.SearchText(context.Background(), textQuery("одинаковый"))
		require.NoError(t, err)
		require.Len(t, res.Entries, 2)
		assert.Equal(t, []string{first, second}, []string{res.Entries[0].ID, res.Entries[1].ID})
	}
}

func TestSearchText_SizeAndProjection(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))
	for i := 0; i < 5; i++ {
		add(t, s, "данные", "анализ данных", "news")
	}

	q := textQuery("данные")
	q.Size = 3
	res, err := s.SearchText(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	require.Len(t, res.Entries, 3)
	_, hasType := res.Entries[0].Fields["content_type"]
	assert.False(t, hasType, "only return fields are projected")
}

func TestSearchText_NoMatch(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.CreateIndex(context.Background(), articlesIndex()))
	add(t, s, "Новости компании", "новый продукт", "news")

	res, err := s.SearchText(context.Background(), textQuery("пароль"))
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Entries)
}

func TestSearchText_IndexMissing(t *testing.T) {
	s := openStore(t)
	_, err := s.SearchText(context.Background(), textQuery("поиск"))
	assert.ErrorIs(t, err, db.ErrIndexNotFound)
}

func TestSearchText_Validation(t *testing.T) {
	s := openStore(t)
	q := textQuery("")
	_, err := s.SearchText(context.Background(), q)
	require.Error(t, err)

	q = textQuery("x")
	q.Type = "phrase"
	_, err = s.SearchText(context.Background(), q)
	require.Error(t, err)
}

func TestBM25_Monotonic(t *testing.T) {
	df := map[string]int{"a": 1}
	one := bm25([]string{"a"}, []string{"a", "b"}, df, 10, 2)
	two := bm25([]string{"a"}, []string{"a", "a"}, df, 10, 2)
	assert.Positive(t, one)
	assert.Greater(t, two, one)
	assert.Zero(t, bm25([]string{"a"}, nil, df, 10, 2))
}
