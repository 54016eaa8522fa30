// Package domain provides the core entities for identity resolution.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoCompany is returned when a user has no company assignment yet.
// This is a valid terminal state for freshly registered users, not a
// data error.
var ErrNoCompany = errors.New("user has no company assignment")

// Role represents a user's role within their company.
type Role string

const (
	// RoleMember is a regular company user.
	RoleMember Role = "member"

	// RoleAdmin can additionally see billing surfaces such as invoices.
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	return r == RoleMember || r == RoleAdmin
}

// CanViewInvoices reports whether the role unlocks invoice surfaces.
func (r Role) CanViewInvoices() bool {
	return r == RoleAdmin
}

// User represents an authenticated platform user.
type User struct {
	// ID is the unique identifier for this user.
	ID uuid.UUID

	// Email is the user's login email.
	Email string

	// FullName is the user's display name.
	FullName string

	// CreatedAt is when the account was created.
	CreatedAt time.Time
}

// Membership links a user to the company they operate.
type Membership struct {
	// UserID is the member's user identifier.
	UserID uuid.UUID

	// CompanyID is the owning company identifier.
	CompanyID uuid.UUID

	// Role is the member's role within the company.
	Role Role

	// CreatedAt is when the membership was established.
	CreatedAt time.Time
}
