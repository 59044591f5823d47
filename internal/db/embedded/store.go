package embedded

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

var (
	bucketMeta = []byte("meta")
	bucketDocs = []byte("docs")
	keyDef     = []byte("definition")
)

// Config holds parameters for the embedded store.
type Config struct {
	Path string
}

// Store implements db.Store on a single bbolt file: one top-level bucket
// per index holding its definition and its documents.
type Store struct {
	db *bbolt.DB
}

// NewStore opens (or creates) the database file.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("path is required")
	}
	bdb, err := bbolt.Open(cfg.Path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w: %w", db.ErrUnavailable, err)
	}
	return &Store{db: bdb}, nil
}

// Ping reports whether the database file is still open.
func (s *Store) Ping(_ context.Context) error {
	if err := s.db.View(func(*bbolt.Tx) error { return nil }); err != nil {
		return &db.Error{Op: db.OpPing, Err: fmt.Errorf("%w: %w", db.ErrUnavailable, err)}
	}
	return nil
}

// Close closes the database file.
func (s *Store) Close() {
	_ = s.db.Close()
}

// WaitForReady returns immediately: a local file is ready once opened.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// CreateIndex stores the definition under a new index bucket.
func (s *Store) CreateIndex(_ context.Context, def *db.IndexDefinition) error {
	if def == nil {
		return errors.New("index definition is required")
	}
	if err := def.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("encode definition: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(def.Name)) != nil {
			return db.ErrIndexExists
		}
		b, err := tx.CreateBucket([]byte(def.Name))
		if err != nil {
			return err
		}
		meta, err := b.CreateBucket(bucketMeta)
		if err != nil {
			return err
		}
		if _, err := b.CreateBucket(bucketDocs); err != nil {
			return err
		}
		return meta.Put(keyDef, raw)
	})
	if errors.Is(err, db.ErrIndexExists) {
		return err
	}
	return wrap(db.OpCreateIndex, err)
}

// IndexExists reports whether the index bucket is present.
func (s *Store) IndexExists(_ context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.View(func(tx *bbolt.Tx) error {
		exists = tx.Bucket([]byte(name)) != nil
		return nil
	})
	if err != nil {
		return false, wrap(db.OpIndexExists, err)
	}
	return exists, nil
}

// AddDocument appends fields under the next sequence number of the index.
// The write is committed before returning.
func (s *Store) AddDocument(_ context.Context, index string, fields map[string]string) (string, error) {
	if len(fields) == 0 {
		return "", errors.New("at least one field is required")
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	var id uint64
	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(index))
		if b == nil {
			return db.ErrIndexNotFound
		}
		docs := b.Bucket(bucketDocs)
		next, err := docs.NextSequence()
		if err != nil {
			return err
		}
		id = next
		return docs.Put(seqKey(id), raw)
	})
	if err != nil {
		return "", wrap(db.OpAddDocument, err)
	}
	return strconv.FormatUint(id, 10), nil
}

func loadDefinition(b *bbolt.Bucket) (*db.IndexDefinition, error) {
	raw := b.Bucket(bucketMeta).Get(keyDef)
	if raw == nil {
		return nil, errors.New("index definition missing")
	}
	var def db.IndexDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	return &def, nil
}

func seqKey(id uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, id)
	return k
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		err = fmt.Errorf("%w: %w", db.ErrUnavailable, err)
	}
	return &db.Error{Op: op, Err: err}
}
