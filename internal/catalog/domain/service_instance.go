package domain

import (
	"time"

	"github.com/google/uuid"
)

// InstanceStatus represents the operational status of a booked instance.
type InstanceStatus string

const (
	// InstanceStatusActive means the instance is running for the company.
	InstanceStatusActive InstanceStatus = "active"

	// InstanceStatusMaintenance means the instance is temporarily down.
	InstanceStatusMaintenance InstanceStatus = "maintenance"
)

// IsValid checks if the status is a known value.
func (s InstanceStatus) IsValid() bool {
	return s == InstanceStatusActive || s == InstanceStatusMaintenance
}

// ServiceInstance is a booked, provisioned service for a company.
type ServiceInstance struct {
	// ID is the unique identifier for this instance.
	ID uuid.UUID

	// CompanyID is the owning company.
	CompanyID uuid.UUID

	// TypeID references the service type this instance is booked under.
	TypeID uuid.UUID

	// Status is the operational status.
	Status InstanceStatus

	// Tier is the package tier the instance was booked in.
	Tier string

	// CreatedAt is when the instance was provisioned.
	CreatedAt time.Time
}
