package chi

import (
	"context"

	"github.com/kailas-cloud/docsearch/internal/domain/search/result"
	"github.com/kailas-cloud/docsearch/internal/usecase/facade"
	healthuc "github.com/kailas-cloud/docsearch/internal/usecase/health"
)

// Facade is the document search surface served over HTTP.
type Facade interface {
	Init(ctx context.Context) (facade.InitResult, error)
	Seed(ctx context.Context) (facade.SeedResult, error)
	Search(ctx context.Context, query, category string) ([]result.Result, error)
}

// HealthChecker reports store health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}
