package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docsearch/internal/domain"
	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	logpkg "github.com/kailas-cloud/docsearch/internal/logger"
	"github.com/kailas-cloud/docsearch/internal/usecase/facade"
	healthuc "github.com/kailas-cloud/docsearch/internal/usecase/health"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeInvalidQuery     ErrorCode = "invalid_query"
	ErrorCodeInvalidCategory  ErrorCode = "invalid_category"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeMethodNotAllowed ErrorCode = "method_not_allowed"
	ErrorCodeStoreUnavailable ErrorCode = "store_unavailable"
	ErrorCodeSchemaSetup      ErrorCode = "schema_setup_failed"
	ErrorCodeIngestion        ErrorCode = "ingestion_failed"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// InitResponse is the body of GET /init. Index mirrors Collection for
// clients written against the older response shape.
type InitResponse struct {
	Status     string `json:"status"`
	Collection string `json:"collection"`
	Index      string `json:"index"`
}

// SeedResponse is the body of POST /seed.
type SeedResponse struct {
	Admitted int `json:"admitted"`
	Indexed  int `json:"indexed"`
}

// SearchHit is one element of the GET /search body.
type SearchHit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server serves the facade over HTTP.
type Server struct {
	facade        Facade
	health        HealthChecker
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(facade Facade, health HealthChecker, logger *zap.Logger) *Server {
	s := &Server{
		facade: facade,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		invalidCategoryHandler,
		invalidQueryHandler,
		sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable, ErrorCodeStoreUnavailable),
		sentinelHandler(domain.ErrSchemaSetup, http.StatusInternalServerError, ErrorCodeSchemaSetup),
		sentinelHandler(domain.ErrIngestion, http.StatusInternalServerError, ErrorCodeIngestion),
	}
	return s
}

// Init handles GET /init.
func (s *Server) Init(w http.ResponseWriter, r *http.Request) {
	res, err := s.facade.Init(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewInitResponse(res))
}

// Seed handles POST /seed.
func (s *Server) Seed(w http.ResponseWriter, r *http.Request) {
	res, err := s.facade.Seed(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewSeedResponse(res))
}

// Search handles GET /search?q=...&content_type=...
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var (
		query       string
		contentType *string
	)
	params := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, true, "q", params, &query); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "invalid q parameter: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "content_type", params, &contentType); err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "invalid content_type parameter: "+err.Error())
		return
	}

	category := ""
	if contentType != nil {
		category = *contentType
	}

	results, err := s.facade.Search(r.Context(), query, category)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewSearchHits(results))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// NewInitResponse renders an init result in the wire format.
func NewInitResponse(res facade.InitResult) InitResponse {
	return InitResponse{Status: res.Status, Collection: res.Collection, Index: res.Collection}
}

// NewSeedResponse renders a seed result in the wire format.
func NewSeedResponse(res facade.SeedResult) SeedResponse {
	return SeedResponse{Admitted: res.Admitted, Indexed: res.Admitted}
}

// NewSearchHits renders search results in the wire format. The slice is
// never nil, so an empty result encodes as [].
func NewSearchHits(results []result.Result) []SearchHit {
	hits := make([]SearchHit, len(results))
	for i, res := range results {
		hits[i] = SearchHit{Title: res.Title(), Snippet: res.Snippet()}
	}
	return hits
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidCategory,
		domain.ErrInvalidQuery,
		domain.ErrStoreUnavailable,
		domain.ErrSchemaSetup,
		domain.ErrIngestion,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// invalidCategoryHandler reports the rejected value together with the allowed set.
func invalidCategoryHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrInvalidCategory) {
		return false
	}
	var ice *domain.InvalidCategoryError
	if errors.As(err, &ice) {
		msg = ice.Error()
	}
	writeError(w, http.StatusBadRequest, ErrorCodeInvalidCategory, msg)
	return true
}

// invalidQueryHandler passes the validation detail through; it never carries store internals.
func invalidQueryHandler(w http.ResponseWriter, err error, _ string) bool {
	if !errors.Is(err, domain.ErrInvalidQuery) {
		return false
	}
	writeError(w, http.StatusBadRequest, ErrorCodeInvalidQuery, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
