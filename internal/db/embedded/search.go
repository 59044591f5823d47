package embedded

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// BM25 parameters, same defaults as Lucene.
const (
	bm25K1 = 1.2
	bm25B  = 0.75
)

type storedDoc struct {
	seq    uint64
	fields map[string]string
	terms  map[string][]string // text field -> analyzed terms
}

type fieldStats struct {
	df     map[string]int
	totLen int
}

// SearchText scores each document per field with BM25 and keeps the best
// boosted field score. Filters are exact matches and do not affect scores.
// Equal scores keep insertion order.
func (s *Store) SearchText(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
	if err := validate(q); err != nil {
		return nil, err
	}

	var (
		def  *db.IndexDefinition
		docs []storedDoc
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(q.IndexName))
		if b == nil {
			return db.ErrIndexNotFound
		}
		var err error
		if def, err = loadDefinition(b); err != nil {
			return err
		}
		return b.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var fields map[string]string
			if err := json.Unmarshal(v, &fields); err != nil {
				return fmt.Errorf("decode document %d: %w", binary.BigEndian.Uint64(k), err)
			}
			docs = append(docs, storedDoc{seq: binary.BigEndian.Uint64(k), fields: fields})
			return nil
		})
	})
	if err != nil {
		return nil, wrap(db.OpSearch, err)
	}

	an := newAnalyzer(def.Language)
	queryTerms := an.terms(q.Query)
	if len(queryTerms) == 0 || len(docs) == 0 {
		return &db.SearchResult{}, nil
	}

	stats := make(map[string]*fieldStats, len(q.Fields))
	for _, f := range q.Fields {
		stats[f.Name] = &fieldStats{df: make(map[string]int)}
	}
	for i := range docs {
		d := &docs[i]
		d.terms = make(map[string][]string, len(q.Fields))
		for name, st := range stats {
			terms := an.terms(d.fields[name])
			d.terms[name] = terms
			st.totLen += len(terms)
			seen := make(map[string]bool, len(terms))
			for _, t := range terms {
				if !seen[t] {
					seen[t] = true
					st.df[t]++
				}
			}
		}
	}

	n := float64(len(docs))
	type scored struct {
		doc   *storedDoc
		score float64
	}
	var hits []scored
	for i := range docs {
		d := &docs[i]
		if !matchesFilters(d.fields, q.Filters) {
			continue
		}
		best := 0.0
		for _, f := range q.Fields {
			st := stats[f.Name]
			avgLen := float64(st.totLen) / n
			fs := bm25(queryTerms, d.terms[f.Name], st.df, n, avgLen)
			boost := f.Boost
			if boost <= 0 {
				boost = 1
			}
			best = math.Max(best, boost*fs)
		}
		if best > 0 {
			hits = append(hits, scored{doc: d, score: best})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	total := len(hits)
	if len(hits) > q.Size {
		hits = hits[:q.Size]
	}

	entries := make([]db.SearchEntry, 0, len(hits))
	for _, h := range hits {
		entries = append(entries, db.SearchEntry{
			ID:     strconv.FormatUint(h.doc.seq, 10),
			Score:  h.score,
			Fields: project(h.doc.fields, q.ReturnFields),
		})
	}
	return &db.SearchResult{Total: total, Entries: entries}, nil
}

func validate(q *db.TextQuery) error {
	switch {
	case q.IndexName == "":
		return fmt.Errorf("index name is required")
	case q.Query == "":
		return fmt.Errorf("query is required")
	case q.Size <= 0:
		return fmt.Errorf("size must be positive")
	case len(q.Fields) == 0:
		return fmt.Errorf("at least one field is required")
	case q.Type != "" && q.Type != db.MatchBestFields:
		return fmt.Errorf("unsupported match type: %s", q.Type)
	}
	return nil
}

func bm25(query, field []string, df map[string]int, n, avgLen float64) float64 {
	if len(field) == 0 {
		return 0
	}
	tf := make(map[string]int, len(field))
	for _, t := range field {
		tf[t]++
	}
	dl := float64(len(field))

	score := 0.0
	for _, term := range query {
		freq := float64(tf[term])
		if freq == 0 {
			continue
		}
		docFreq := float64(df[term])
		idf := math.Log(1 + (n-docFreq+0.5)/(docFreq+0.5))
		norm := freq * (bm25K1 + 1) / (freq + bm25K1*(1-bm25B+bm25B*dl/avgLen))
		score += idf * norm
	}
	return score
}

func matchesFilters(fields map[string]string, filters []db.TermFilter) bool {
	for _, f := range filters {
		if fields[f.Field] != f.Value {
			return false
		}
	}
	return true
}

func project(fields map[string]string, keep []string) map[string]string {
	if len(keep) == 0 {
		out := make(map[string]string, len(fields))
		for k, v := range fields {
			out[k] = v
		}
		return out
	}
	out := make(map[string]string, len(keep))
	for _, k := range keep {
		if v, ok := fields[k]; ok {
			out[k] = v
		}
	}
	return out
}
