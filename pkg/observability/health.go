package observability

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthCheckResult is the result of a health check.
type HealthCheckResult struct {
	Status    HealthStatus `json:"status"`
	Message   string       `json:"message,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// HealthChecker is a function that performs a health check.
type HealthChecker func(ctx context.Context) HealthCheckResult

// HealthRegistry manages health checks for multiple components.
type HealthRegistry struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
}

// NewHealthRegistry creates a new health registry.
func NewHealthRegistry() *HealthRegistry {
	return &HealthRegistry{
		checkers: make(map[string]HealthChecker),
	}
}

// Register adds a health checker for a component.
func (r *HealthRegistry) Register(name string, checker HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs all registered health checks.
func (r *HealthRegistry) CheckAll(ctx context.Context) map[string]HealthCheckResult {
	r.mu.RLock()
	checkers := make(map[string]HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		checkers[name] = c
	}
	r.mu.RUnlock()

	results := make(map[string]HealthCheckResult, len(checkers))
	for name, c := range checkers {
		results[name] = c(ctx)
	}
	return results
}

// Healthy reports whether every registered check passes.
func (r *HealthRegistry) Healthy(ctx context.Context) bool {
	for _, result := range r.CheckAll(ctx) {
		if result.Status != HealthStatusHealthy {
			return false
		}
	}
	return true
}

// Handler returns an HTTP handler reporting aggregate health as JSON.
func (r *HealthRegistry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		results := r.CheckAll(req.Context())

		status := http.StatusOK
		for _, result := range results {
			if result.Status != HealthStatusHealthy {
				status = http.StatusServiceUnavailable
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(results)
	})
}

// CheckHealthy is a helper returning a passing result.
func CheckHealthy(message string) HealthCheckResult {
	return HealthCheckResult{
		Status:    HealthStatusHealthy,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// CheckUnhealthy is a helper returning a failing result.
func CheckUnhealthy(err error) HealthCheckResult {
	result := HealthCheckResult{
		Status:    HealthStatusUnhealthy,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		result.Message = err.Error()
	}
	return result
}
