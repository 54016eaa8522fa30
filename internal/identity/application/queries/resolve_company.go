// Package queries provides query handlers for identity resolution.
package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/porticohq/portico/internal/identity/domain"
)

// ResolveCompanyQuery represents a query to resolve a user's company.
type ResolveCompanyQuery struct {
	UserID uuid.UUID
}

// ResolveCompanyResult represents the resolved company assignment.
// HasCompany false means the user legitimately has no company yet;
// backend failures are reported as errors instead.
type ResolveCompanyResult struct {
	HasCompany bool
	CompanyID  uuid.UUID
	Role       domain.Role
}

// ResolveCompanyHandler resolves the company a user operates.
type ResolveCompanyHandler struct {
	memberships domain.MembershipRepository
}

// NewResolveCompanyHandler creates a new resolve company handler.
func NewResolveCompanyHandler(memberships domain.MembershipRepository) *ResolveCompanyHandler {
	return &ResolveCompanyHandler{memberships: memberships}
}

// Handle executes the resolve company query.
func (h *ResolveCompanyHandler) Handle(ctx context.Context, query ResolveCompanyQuery) (*ResolveCompanyResult, error) {
	if query.UserID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}

	membership, err := h.memberships.GetByUserID(ctx, query.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNoCompany) {
			return &ResolveCompanyResult{HasCompany: false}, nil
		}
		return nil, fmt.Errorf("failed to resolve company: %w", err)
	}

	return &ResolveCompanyResult{
		HasCompany: true,
		CompanyID:  membership.CompanyID,
		Role:       membership.Role,
	}, nil
}
