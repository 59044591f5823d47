package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/docsearch/internal/db"
)

type hit struct {
	key    string
	score  float64
	fields map[string]string
}

// SearchText runs one FT.SEARCH per boosted field and combines the hits
// best-fields style: a document scores max(boost * fieldScore).
func (s *Store) SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if q.Size <= 0 {
		return nil, fmt.Errorf("size must be positive")
	}
	if len(q.Fields) == 0 {
		return nil, fmt.Errorf("at least one field is required")
	}
	if q.Type != "" && q.Type != db.MatchBestFields {
		return nil, fmt.Errorf("unsupported match type: %s", q.Type)
	}

	terms := queryTerms(q.Query)
	if len(terms) == 0 {
		return &db.SearchResult{}, nil
	}

	filterStr := buildFilter(q.Filters)

	var order []string
	best := make(map[string]*hit)
	for _, f := range q.Fields {
		hits, err := s.searchField(ctx, q, f.Name, terms, filterStr)
		if err != nil {
			return nil, err
		}
		boost := f.Boost
		if boost <= 0 {
			boost = 1
		}
		for _, h := range hits {
			score := h.score * boost
			cur, ok := best[h.key]
			if !ok {
				h.score = score
				best[h.key] = &h
				order = append(order, h.key)
				continue
			}
			if score > cur.score {
				cur.score = score
			}
		}
	}

	ranked := make([]*hit, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, best[key])
	}
	// Stable sort keeps first-seen order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	total := len(ranked)
	if len(ranked) > q.Size {
		ranked = ranked[:q.Size]
	}

	entries := make([]db.SearchEntry, 0, len(ranked))
	for _, h := range ranked {
		entries = append(entries, db.SearchEntry{
			ID:     idFromKey(q.IndexName, h.key),
			Score:  h.score,
			Fields: h.fields,
		})
	}

	return &db.SearchResult{Total: total, Entries: entries}, nil
}

func (s *Store) searchField(
	ctx context.Context, q *db.TextQuery, field string, terms []string, filterStr string,
) ([]hit, error) {
	textPart := fmt.Sprintf("@%s:(%s)", field, strings.Join(terms, " | "))

	queryStr := textPart
	if filterStr != "" {
		queryStr = filterStr + " " + textPart
	}

	args := []string{q.IndexName, queryStr, "WITHSCORES", "SCORER", "BM25"}

	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}

	args = append(args,
		"LIMIT", "0", strconv.Itoa(q.Size),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		if isRedisErr(err, "unknown index name") || isRedisErr(err, "no such index") {
			return nil, &db.Error{Op: db.OpSearch, Err: db.ErrIndexNotFound}
		}
		return nil, classify(db.OpSearch, err)
	}

	return parseScoredResult(raw)
}

// --- Result parsing ---

func parseScoredResult(raw []rueidis.RedisMessage) ([]hit, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return nil, nil
	}

	hits := make([]hit, 0, (len(raw)-1)/3)
	// 3-stride: [total, key1, score1, fields1, key2, score2, fields2, ...]
	for i := 1; i+2 < len(raw); i += 3 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		scoreStr, err := raw[i+1].ToString()
		if err != nil {
			continue
		}
		score, err := strconv.ParseFloat(scoreStr, 64)
		if err != nil {
			continue
		}

		fields, err := raw[i+2].ToArray()
		if err != nil {
			continue
		}

		hits = append(hits, hit{
			key:    key,
			score:  score,
			fields: parseFieldPairs(fields),
		})
	}

	return hits, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Query building ---

// queryTerms splits free text into escaped terms. Terms are OR-ed, matching
// the default operator of a multi_match query.
func queryTerms(text string) []string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	terms := make([]string, 0, len(words))
	for _, w := range words {
		terms = append(terms, escapeQuery(strings.ToLower(w)))
	}
	return terms
}

func buildFilter(filters []db.TermFilter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, buildTagFilter(f.Field, f.Value))
	}
	return strings.Join(parts, " ")
}

func buildTagFilter(key, value string) string {
	escaped := tagEscaper.Replace(value)
	return fmt.Sprintf("@%s:{%s}", key, escaped)
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
