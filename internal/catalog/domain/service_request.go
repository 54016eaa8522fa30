package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the review status of a service request.
type RequestStatus string

const (
	// RequestStatusPending means the request awaits operator review.
	RequestStatusPending RequestStatus = "pending"

	// RequestStatusApproved means the request was accepted and an
	// instance has been (or is being) provisioned.
	RequestStatusApproved RequestStatus = "approved"

	// RequestStatusRejected means the request was declined.
	RequestStatusRejected RequestStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// ServiceRequest is a company's ask to have a service type provisioned.
type ServiceRequest struct {
	// ID is the unique identifier for this request.
	ID uuid.UUID

	// CompanyID is the requesting company.
	CompanyID uuid.UUID

	// TypeID references the requested service type.
	TypeID uuid.UUID

	// Tier is the requested package tier.
	Tier string

	// RequestedBy is the user who submitted the request.
	RequestedBy uuid.UUID

	// Status is the review status.
	Status RequestStatus

	// ReviewNotes carries the operator's comment, set on rejection.
	ReviewNotes string

	// CreatedAt is when the request was submitted.
	CreatedAt time.Time

	// UpdatedAt is when the request was last reviewed.
	UpdatedAt time.Time
}

// NewServiceRequest creates a pending request for a service type at the
// given package tier.
func NewServiceRequest(companyID, typeID, requestedBy uuid.UUID, tier string) *ServiceRequest {
	now := time.Now().UTC()
	return &ServiceRequest{
		ID:          uuid.New(),
		CompanyID:   companyID,
		TypeID:      typeID,
		Tier:        tier,
		RequestedBy: requestedBy,
		Status:      RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
