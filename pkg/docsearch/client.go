package docsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/docsearch/internal/db"
	dbEmbedded "github.com/kailas-cloud/docsearch/internal/db/embedded"
	dbOpenSearch "github.com/kailas-cloud/docsearch/internal/db/opensearch"
	dbRedis "github.com/kailas-cloud/docsearch/internal/db/redis"
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	domdoc "github.com/kailas-cloud/docsearch/internal/domain/document"
	"github.com/kailas-cloud/docsearch/internal/domain/search/request"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	collectionrepo "github.com/kailas-cloud/docsearch/internal/repository/collection"
	documentrepo "github.com/kailas-cloud/docsearch/internal/repository/document"
	searchrepo "github.com/kailas-cloud/docsearch/internal/repository/search"
	collectionuc "github.com/kailas-cloud/docsearch/internal/usecase/collection"
	documentuc "github.com/kailas-cloud/docsearch/internal/usecase/document"
	"github.com/kailas-cloud/docsearch/internal/usecase/facade"
	healthuc "github.com/kailas-cloud/docsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docsearch/internal/usecase/search"
)

const (
	defaultCollection       = "articles_index"
	defaultLanguage         = db.LanguageRussian
	defaultReadinessTimeout = 10 * time.Second
	defaultRequestTimeout   = 10 * time.Second
)

// Internal interfaces, replaced by mocks in tests.
type collectionUseCase interface {
	Ensure(ctx context.Context, name string) (domcol.Collection, error)
}

type documentUseCase interface {
	Admit(ctx context.Context, collectionName string, candidates []domdoc.Candidate) (int, error)
	Seed(ctx context.Context, collectionName string) (int, error)
}

type searchUseCase interface {
	Search(ctx context.Context, collectionName string, req request.Request) ([]result.Result, error)
}

type facadeUseCase interface {
	Init(ctx context.Context) (facade.InitResult, error)
	Seed(ctx context.Context) (facade.SeedResult, error)
	Search(ctx context.Context, query, category string) ([]result.Result, error)
}

// Client is the docsearch SDK entry point.
type Client struct {
	store      db.Store
	collection string
	collSvc    collectionUseCase
	docSvc     documentUseCase
	searchSvc  searchUseCase
	facade     facadeUseCase
	healthSvc  healthUseCase
	obs        *observer
}

// New creates a Client and connects to the store.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.driver == "" {
		return nil, errors.New("docsearch: store required (use WithOpenSearch, WithRedis or WithEmbedded)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, cfg.readiness); err != nil {
		store.Close()
		return nil, fmt.Errorf("docsearch: store not ready: %w", err)
	}

	if cfg.logger != nil && cfg.driver == "opensearch" && !cfg.plainHTTP && !cfg.verifyTLS {
		cfg.logger.Warn("OpenSearch certificate verification is disabled", "host", cfg.host)
	}

	return wireClient(store, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "opensearch":
		s, err := dbOpenSearch.NewStore(dbOpenSearch.Config{
			Host:               cfg.host,
			Port:               cfg.port,
			Username:           cfg.username,
			Password:           cfg.password,
			UseTLS:             !cfg.plainHTTP,
			InsecureSkipVerify: !cfg.verifyTLS,
			Timeout:            cfg.reqTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("docsearch: create opensearch store: %w", err)
		}
		return s, nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("docsearch: create redis store: %w", err)
		}
		return s, nil
	case "embedded":
		s, err := dbEmbedded.NewStore(dbEmbedded.Config{Path: cfg.path})
		if err != nil {
			return nil, fmt.Errorf("docsearch: create embedded store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("docsearch: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	collSvc := collectionuc.New(collectionrepo.New(store), domcol.WithLanguage(cfg.language))
	docSvc := documentuc.New(documentrepo.New(store))
	searchSvc := searchuc.New(searchrepo.New(store))

	return &Client{
		store:      store,
		collection: cfg.collection,
		collSvc:    collSvc,
		docSvc:     docSvc,
		searchSvc:  searchSvc,
		facade:     facade.New(cfg.collection, collSvc, docSvc, searchSvc),
		healthSvc:  healthuc.New(store),
		obs:        obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks store connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", c.collection, start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Init creates the configured collection if it does not exist.
func (c *Client) Init(ctx context.Context) (_ InitResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("init", c.collection, start, err) }()

	res, err := c.facade.Init(ctx)
	if err != nil {
		return InitResult{}, err
	}
	return InitResult{Status: res.Status, Collection: res.Collection}, nil
}

// Seed ensures the configured collection and admits the demo documents.
func (c *Client) Seed(ctx context.Context) (_ SeedResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("seed", c.collection, start, err) }()

	res, err := c.facade.Seed(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	c.obs.admitted(c.collection, res.Admitted)
	return SeedResult{Admitted: res.Admitted}, nil
}

// Search queries the configured collection. An empty query fails with
// ErrInvalidQuery; a content type outside the allowed set fails with
// *InvalidCategoryError.
func (c *Client) Search(ctx context.Context, query string, contentType ContentType) (_ []SearchResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", c.collection, start, err) }()

	results, err := c.facade.Search(ctx, query, string(contentType))
	if err != nil {
		return nil, err
	}
	return fromInternalResults(results), nil
}

// Collection addresses a collection by name.
func (c *Client) Collection(name string) *CollectionService {
	return &CollectionService{
		name:      name,
		collSvc:   c.collSvc,
		docSvc:    c.docSvc,
		searchSvc: c.searchSvc,
		obs:       c.obs,
	}
}
