// Package domain provides the core entities for the service catalog.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TypeStatus represents the lifecycle status of a service type.
type TypeStatus string

const (
	// TypeStatusActive means the type is offered to companies.
	TypeStatusActive TypeStatus = "active"

	// TypeStatusInactive means the type is withdrawn from the catalog.
	TypeStatusInactive TypeStatus = "inactive"

	// TypeStatusMaintenance means the type is temporarily unavailable.
	TypeStatusMaintenance TypeStatus = "maintenance"
)

// IsValid checks if the status is a known value.
func (s TypeStatus) IsValid() bool {
	switch s {
	case TypeStatusActive, TypeStatusInactive, TypeStatusMaintenance:
		return true
	}
	return false
}

// Category groups service types on the dashboard.
type Category string

const (
	CategoryMessaging Category = "messaging"
	CategoryWeb       Category = "web"
	CategoryMobile    Category = "mobile"
	CategoryGeneral   Category = "general"
)

// ServiceType describes an offering in the service catalog.
type ServiceType struct {
	// ID is the unique identifier for this service type.
	ID uuid.UUID

	// Slug is the stable machine name, e.g. "whatsapp" or "website".
	Slug string

	// Names holds the display name per locale tag, e.g. "en", "de".
	Names map[string]string

	// Category groups the type on the dashboard.
	Category Category

	// Status is the catalog lifecycle status.
	Status TypeStatus

	// PackageTiers lists the package tiers this type can be booked in.
	PackageTiers []string

	// CreatedAt is when the type was added to the catalog.
	CreatedAt time.Time
}

// Name returns the display name for the locale, falling back to English
// and then to the slug when no translation exists.
func (t *ServiceType) Name(locale string) string {
	if name, ok := t.Names[locale]; ok && name != "" {
		return name
	}
	if name, ok := t.Names["en"]; ok && name != "" {
		return name
	}
	return t.Slug
}
