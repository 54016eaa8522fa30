// Package persistence provides PostgreSQL implementations of identity repositories.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/identity/domain"
)

// PostgresMembershipRepository implements domain.MembershipRepository using PostgreSQL.
type PostgresMembershipRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMembershipRepository creates a new PostgreSQL membership repository.
func NewPostgresMembershipRepository(pool *pgxpool.Pool) *PostgresMembershipRepository {
	return &PostgresMembershipRepository{pool: pool}
}

// GetByUserID retrieves the membership for a user.
func (r *PostgresMembershipRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Membership, error) {
	query := `
		SELECT user_id, company_id, role, created_at
		FROM memberships
		WHERE user_id = $1`

	var m domain.Membership
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.CompanyID,
		&m.Role,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoCompany
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}
