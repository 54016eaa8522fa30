// Package queries provides query handlers for the service catalog.
package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/errgroup"

	"github.com/porticohq/portico/internal/catalog/domain"
	"github.com/porticohq/portico/internal/shared/application"
)

// ErrSnapshotStale is returned when a newer snapshot was requested while
// this one was still in flight. Callers drop the result and keep the
// newer one.
var ErrSnapshotStale = errors.New("catalog snapshot superseded by a newer request")

// CatalogSnapshotQuery requests a fresh classified catalog for a company.
type CatalogSnapshotQuery struct {
	CompanyID uuid.UUID
	Locale    string
}

// CatalogSnapshotResult is a fenced, classified view of the catalog.
type CatalogSnapshotResult struct {
	// Seq is the fence sequence this snapshot was fetched under.
	Seq uint64

	// States is the classified catalog, ordered by display name.
	States []domain.DisplayState

	// Partial is true when at least one collection could not be read
	// and was degraded to empty.
	Partial bool

	// FailedCollections names the degraded collections.
	FailedCollections []string
}

// CatalogSnapshotHandler fetches the three catalog collections
// concurrently and classifies them into display states. Each collection
// sits behind its own circuit breaker so a flapping backend degrades to
// an empty collection instead of failing the whole dashboard.
type CatalogSnapshotHandler struct {
	types     domain.ServiceTypeRepository
	instances domain.ServiceInstanceRepository
	requests  domain.ServiceRequestRepository

	typeBreaker     *gobreaker.CircuitBreaker[[]*domain.ServiceType]
	instanceBreaker *gobreaker.CircuitBreaker[[]*domain.ServiceInstance]
	requestBreaker  *gobreaker.CircuitBreaker[[]*domain.ServiceRequest]

	fence  *application.Fence
	logger *slog.Logger
}

// NewCatalogSnapshotHandler creates a new catalog snapshot handler.
func NewCatalogSnapshotHandler(
	types domain.ServiceTypeRepository,
	instances domain.ServiceInstanceRepository,
	requests domain.ServiceRequestRepository,
	fence *application.Fence,
	logger *slog.Logger,
) *CatalogSnapshotHandler {
	return &CatalogSnapshotHandler{
		types:           types,
		instances:       instances,
		requests:        requests,
		typeBreaker:     gobreaker.NewCircuitBreaker[[]*domain.ServiceType](breakerSettings("catalog.types")),
		instanceBreaker: gobreaker.NewCircuitBreaker[[]*domain.ServiceInstance](breakerSettings("catalog.instances")),
		requestBreaker:  gobreaker.NewCircuitBreaker[[]*domain.ServiceRequest](breakerSettings("catalog.requests")),
		fence:           fence,
		logger:          logger,
	}
}

func breakerSettings(name string) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}
}

// Handle executes the catalog snapshot query. Results from a superseded
// fetch are discarded with ErrSnapshotStale.
func (h *CatalogSnapshotHandler) Handle(ctx context.Context, query CatalogSnapshotQuery) (*CatalogSnapshotResult, error) {
	if query.CompanyID == uuid.Nil {
		return nil, fmt.Errorf("company ID is required")
	}

	seq := h.fence.Issue()

	var (
		types     []*domain.ServiceType
		instances []*domain.ServiceInstance
		requests  []*domain.ServiceRequest

		failed []string
	)

	g, gctx := errgroup.WithContext(ctx)
	var typeErr, instanceErr, requestErr error

	g.Go(func() error {
		types, typeErr = h.typeBreaker.Execute(func() ([]*domain.ServiceType, error) {
			return h.types.ListAll(gctx)
		})
		return nil
	})
	g.Go(func() error {
		instances, instanceErr = h.instanceBreaker.Execute(func() ([]*domain.ServiceInstance, error) {
			return h.instances.ListByCompany(gctx, query.CompanyID)
		})
		return nil
	})
	g.Go(func() error {
		requests, requestErr = h.requestBreaker.Execute(func() ([]*domain.ServiceRequest, error) {
			return h.requests.ListByCompany(gctx, query.CompanyID)
		})
		return nil
	})

	// The goroutines never return errors; degradation is per collection.
	_ = g.Wait()

	if typeErr != nil {
		h.logger.Warn("degrading service types to empty", "error", typeErr)
		types, failed = nil, append(failed, "service_types")
	}
	if instanceErr != nil {
		h.logger.Warn("degrading service instances to empty", "error", instanceErr)
		instances, failed = nil, append(failed, "service_instances")
	}
	if requestErr != nil {
		h.logger.Warn("degrading service requests to empty", "error", requestErr)
		requests, failed = nil, append(failed, "service_requests")
	}

	if !h.fence.Admit(seq) {
		return nil, ErrSnapshotStale
	}

	return &CatalogSnapshotResult{
		Seq:               seq,
		States:            domain.ClassifyCatalog(types, instances, requests, query.Locale),
		Partial:           len(failed) > 0,
		FailedCollections: failed,
	}, nil
}
