package docsearch

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	driver string // "opensearch", "redis" or "embedded"

	host       string
	port       int
	username   string
	password   string
	plainHTTP  bool
	verifyTLS  bool
	reqTimeout time.Duration

	addrs []string

	path string

	collection string
	language   string
	readiness  time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		collection: defaultCollection,
		language:   defaultLanguage,
		readiness:  defaultReadinessTimeout,
		reqTimeout: defaultRequestTimeout,
	}
}

// WithOpenSearch configures the client to talk to an OpenSearch cluster over
// HTTPS with basic auth. Certificates are not verified unless WithVerifyTLS is set.
func WithOpenSearch(host string, port int, username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "opensearch"
		c.host = host
		c.port = port
		c.username = username
		c.password = password
	})
}

// WithPlainHTTP talks to OpenSearch without TLS.
func WithPlainHTTP() Option {
	return optionFunc(func(c *clientConfig) {
		c.plainHTTP = true
	})
}

// WithVerifyTLS enables OpenSearch server certificate verification.
func WithVerifyTLS() Option {
	return optionFunc(func(c *clientConfig) {
		c.verifyTLS = true
	})
}

// WithRequestTimeout bounds each OpenSearch HTTP request. Default: 10s.
func WithRequestTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.reqTimeout = d
	})
}

// WithRedis configures the client to connect to Redis 8+ (or Redis Stack).
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithEmbedded stores the collection in a local bbolt file.
func WithEmbedded(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = "embedded"
		c.path = path
	})
}

// WithCollection sets the collection used by Init, Seed and Search.
// Default: "articles_index".
func WithCollection(name string) Option {
	return optionFunc(func(c *clientConfig) {
		c.collection = name
	})
}

// WithLanguage sets the text analyzer: "russian" (default), "english" or "standard".
func WithLanguage(lang string) Option {
	return optionFunc(func(c *clientConfig) {
		c.language = lang
	})
}

// WithReadinessTimeout bounds the initial connectivity check. Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readiness = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
