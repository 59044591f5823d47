package docsearch

import "github.com/kailas-cloud/docsearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrStoreUnavailable = domain.ErrStoreUnavailable
	ErrSchemaSetup      = domain.ErrSchemaSetup
	ErrIngestion        = domain.ErrIngestion
	ErrInvalidCategory  = domain.ErrInvalidCategory
	ErrInvalidQuery     = domain.ErrInvalidQuery
)

// InvalidCategoryError carries the rejected content type and the allowed set.
// Use errors.As() to inspect it.
type InvalidCategoryError = domain.InvalidCategoryError
