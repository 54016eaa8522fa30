package domain

import (
	"context"

	"github.com/google/uuid"
)

// MembershipRepository defines the interface for membership lookups.
type MembershipRepository interface {
	// GetByUserID retrieves the membership for a user.
	// Returns ErrNoCompany when the user has no company assignment.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Membership, error)
}

// UserRepository defines the interface for user lookups.
type UserRepository interface {
	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
