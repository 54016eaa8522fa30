package domain

import (
	"context"

	"github.com/google/uuid"
)

// ServiceTypeRepository defines the interface for catalog type reads.
type ServiceTypeRepository interface {
	// ListAll retrieves every catalog type, ordered by English name.
	ListAll(ctx context.Context) ([]*ServiceType, error)
}

// ServiceInstanceRepository defines the interface for instance reads.
type ServiceInstanceRepository interface {
	// ListByCompany retrieves every instance booked by a company.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*ServiceInstance, error)
}

// ServiceRequestRepository defines the interface for request reads and writes.
type ServiceRequestRepository interface {
	// ListByCompany retrieves a company's requests, newest first.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*ServiceRequest, error)

	// Create persists a new request.
	Create(ctx context.Context, request *ServiceRequest) error
}
