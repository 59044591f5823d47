package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	store DBPinger
}

// New creates a Service.
func New(store DBPinger) *Service {
	return &Service{store: store}
}

// Check pings the store.
func (s *Service) Check(ctx context.Context) Report {
	if err := s.store.Ping(ctx); err != nil {
		return Report{Status: Unhealthy, Checks: map[string]CheckResult{"store": CheckError}}
	}
	return Report{Status: Healthy, Checks: map[string]CheckResult{"store": CheckOK}}
}
