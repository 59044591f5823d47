// Package docsearch provides an in-process Go client for keyword search over
// a single document collection backed by OpenSearch, Redis with the search
// module, or an embedded bbolt file.
//
// # Facade API
//
// The client is bound to one collection (default "articles_index") and
// mirrors the HTTP service: Init, Seed and Search. An unknown content type
// passed to Search is rejected with *InvalidCategoryError.
//
//	client, _ := docsearch.New(ctx, docsearch.WithEmbedded("docsearch.db"))
//	defer client.Close()
//	_, _ = client.Init(ctx)
//	_, _ = client.Seed(ctx)
//	hits, _ := client.Search(ctx, "поиск", docsearch.ContentArticle)
//
// # Collection API
//
// Collection(name) addresses any collection directly. Its Search is lenient:
// an unknown content type yields no results and no error.
//
//	col := client.Collection("manuals")
//	_ = col.Ensure(ctx)
//	n, _ := col.Admit(ctx, []docsearch.Document{{Title: "...", Content: "...", ContentType: "faq"}})
//	hits, _ := col.Search(ctx, "пароль", "")
package docsearch
