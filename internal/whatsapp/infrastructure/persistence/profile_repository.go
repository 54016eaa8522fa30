package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/whatsapp/domain"
)

// PostgresProfileRepository implements domain.ProfileRepository using PostgreSQL.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgreSQL profile repository.
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

// GetByCompany retrieves a company's profile, or nil when none exists.
func (r *PostgresProfileRepository) GetByCompany(ctx context.Context, companyID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, company_id, display_name, about, updated_at
		FROM wa_profiles
		WHERE company_id = $1`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, companyID).Scan(
		&p.ID,
		&p.CompanyID,
		&p.DisplayName,
		&p.About,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// DeleteByCompany removes a company's profile.
func (r *PostgresProfileRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wa_profiles WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
