package opensearch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"

	"github.com/kailas-cloud/docsearch/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

const defaultTimeout = 10 * time.Second

// Config holds connection parameters for an OpenSearch cluster.
type Config struct {
	Host               string
	Port               int
	Username           string
	Password           string
	UseTLS             bool
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// BaseURL returns the cluster endpoint derived from the config.
func (c Config) BaseURL() string {
	scheme := "http"
	if c.UseTLS {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: c.Host + ":" + strconv.Itoa(c.Port)}
	return u.String()
}

// Store implements db.Store on top of opensearchapi.Client.
// The client is safe for concurrent use.
type Store struct {
	client    *opensearchapi.Client
	transport *http.Transport
	timeout   time.Duration
}

// NewStore creates an OpenSearch store. No request is made until first use.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Host == "" {
		return nil, errors.New("host is required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.UseTLS {
		transport.TLSClientConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: cfg.InsecureSkipVerify, //nolint:gosec // opt-in via config for self-signed dev clusters
		}
	}

	return newStore(cfg.BaseURL(), cfg.Username, cfg.Password, transport, cfg.Timeout)
}

func newStore(addr, username, password string, rt http.RoundTripper, timeout time.Duration) (*Store, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := opensearchapi.NewClient(opensearchapi.Config{
		Client: opensearch.Config{
			Addresses: []string{addr},
			Username:  username,
			Password:  password,
			Transport: rt,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create opensearch client: %w", err)
	}

	s := &Store{client: client, timeout: timeout}
	if t, ok := rt.(*http.Transport); ok {
		s.transport = t
	}
	return s, nil
}

// Ping checks connectivity and credentials via HEAD on the cluster root.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, nil)
	closeBody(resp)
	if err != nil {
		return classify(db.OpPing, resp, err)
	}
	return nil
}

// Close releases idle connections.
func (s *Store) Close() {
	if s.transport != nil {
		s.transport.CloseIdleConnections()
	}
}

// WaitForReady polls Ping until the cluster responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w: %w", db.ErrUnavailable, ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// classify maps a failed call to the db error set. A missing response means
// the cluster was never reached; rejected credentials and an overloaded
// cluster are treated the same way.
func classify(op string, resp *opensearch.Response, err error) error {
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	switch status {
	case 0,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return &db.Error{Op: op, Err: fmt.Errorf("%w: %w", db.ErrUnavailable, err)}
	}

	if errorType(err) == "index_not_found_exception" {
		return &db.Error{Op: op, Err: db.ErrIndexNotFound}
	}
	return &db.Error{Op: op, Err: err}
}

// errorType extracts the engine exception type, e.g. "index_not_found_exception".
func errorType(err error) string {
	var se *opensearch.StructError
	if errors.As(err, &se) {
		return se.Err.Type
	}
	if err == nil {
		return ""
	}
	for _, t := range []string{"index_not_found_exception", "resource_already_exists_exception"} {
		if strings.Contains(err.Error(), t) {
			return t
		}
	}
	return ""
}

func closeBody(resp *opensearch.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
