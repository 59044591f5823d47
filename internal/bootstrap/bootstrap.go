// Package bootstrap is the composition root: config to store to services.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/config"
	"github.com/kailas-cloud/docsearch/internal/db"
	dbEmbedded "github.com/kailas-cloud/docsearch/internal/db/embedded"
	dbOpenSearch "github.com/kailas-cloud/docsearch/internal/db/opensearch"
	dbRedis "github.com/kailas-cloud/docsearch/internal/db/redis"
	domcol "github.com/kailas-cloud/docsearch/internal/domain/collection"
	"github.com/kailas-cloud/docsearch/internal/metrics"
	collectionrepo "github.com/kailas-cloud/docsearch/internal/repository/collection"
	documentrepo "github.com/kailas-cloud/docsearch/internal/repository/document"
	searchrepo "github.com/kailas-cloud/docsearch/internal/repository/search"
	chiTransport "github.com/kailas-cloud/docsearch/internal/transport/chi"
	collectionuc "github.com/kailas-cloud/docsearch/internal/usecase/collection"
	documentuc "github.com/kailas-cloud/docsearch/internal/usecase/document"
	"github.com/kailas-cloud/docsearch/internal/usecase/facade"
	healthuc "github.com/kailas-cloud/docsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/docsearch/internal/usecase/search"
)

// App holds the wired services for the configured collection.
type App struct {
	Store       db.Store
	Collections *collectionuc.Service
	Documents   *documentuc.Service
	Search      *searchuc.Service
	Health      *healthuc.Service
	Facade      *facade.Service
}

// OpenStore creates the store selected by cfg.Driver, wrapped with metrics.
// It does not wait for readiness.
func OpenStore(cfg config.DatabaseConfig, logger *zap.Logger) (db.Store, error) {
	var (
		store db.Store
		err   error
	)
	switch cfg.Driver {
	case config.DriverOpenSearch:
		osCfg := cfg.OpenSearch
		if osCfg.TLSEnabled() && osCfg.SkipVerify() {
			logger.Warn("OpenSearch certificate verification is disabled; do not use this outside development",
				zap.String("host", osCfg.Host))
		}
		store, err = dbOpenSearch.NewStore(dbOpenSearch.Config{
			Host:               osCfg.Host,
			Port:               osCfg.Port,
			Username:           osCfg.Username,
			Password:           osCfg.Password,
			UseTLS:             osCfg.TLSEnabled(),
			InsecureSkipVerify: osCfg.SkipVerify(),
			Timeout:            time.Duration(osCfg.RequestTimeoutSec) * time.Second,
		})
	case config.DriverRedis:
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Redis.Addrs,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	case config.DriverEmbedded:
		store, err = dbEmbedded.NewStore(dbEmbedded.Config{Path: cfg.Embedded.Path})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s store: %w", cfg.Driver, err)
	}
	return metrics.InstrumentStore(store, cfg.Driver), nil
}

// Wire builds repositories and services on top of an open store.
func Wire(store db.Store, cfg config.CollectionConfig) *App {
	collRepo := collectionrepo.New(store)
	docRepo := documentrepo.New(store)
	searchRepo := searchrepo.New(store)

	collSvc := collectionuc.New(collRepo,
		domcol.WithLanguage(cfg.Language),
		domcol.WithShards(cfg.Shards),
		domcol.WithReplicas(cfg.Replicas),
	)
	docSvc := documentuc.New(docRepo)
	searchSvc := searchuc.New(searchRepo)

	return &App{
		Store:       store,
		Collections: collSvc,
		Documents:   docSvc,
		Search:      searchSvc,
		Health:      healthuc.New(store),
		Facade:      facade.New(cfg.Name, collSvc, docSvc, searchSvc),
	}
}

// New opens the configured store, waits until it answers and wires the services.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	store, err := OpenStore(cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, timeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("collection", cfg.Collection.Name),
	)

	return Wire(store, cfg.Collection), nil
}

// Handler returns the HTTP handler serving the facade.
func (a *App) Handler(logger *zap.Logger, apiKeys []string) http.Handler {
	return chiTransport.NewRouter(chiTransport.NewServer(a.Facade, a.Health, logger), logger, apiKeys)
}

// Close releases the store.
func (a *App) Close() {
	a.Store.Close()
}
