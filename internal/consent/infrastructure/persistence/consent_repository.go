// Package persistence provides the platform and local stores backing the
// consent gate.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/consent/domain"
)

// PostgresConsentRepository implements domain.ConsentRepository using PostgreSQL.
type PostgresConsentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresConsentRepository creates a new PostgreSQL consent repository.
func NewPostgresConsentRepository(pool *pgxpool.Pool) *PostgresConsentRepository {
	return &PostgresConsentRepository{pool: pool}
}

// Get retrieves the consent record for a user, service and document version.
func (r *PostgresConsentRepository) Get(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string) (*domain.ConsentRecord, error) {
	query := `
		SELECT user_id, company_id, service_tag, doc_version, granted_at
		FROM consent_records
		WHERE user_id = $1 AND service_tag = $2 AND doc_version = $3`

	var record domain.ConsentRecord
	err := r.pool.QueryRow(ctx, query, userID, serviceTag, docVersion).Scan(
		&record.UserID,
		&record.CompanyID,
		&record.ServiceTag,
		&record.DocVersion,
		&record.GrantedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotGranted
		}
		return nil, fmt.Errorf("failed to get consent record: %w", err)
	}

	return &record, nil
}

// Save persists a consent record. Accepting the same version twice is a
// no-op rather than an error.
func (r *PostgresConsentRepository) Save(ctx context.Context, record *domain.ConsentRecord) error {
	query := `
		INSERT INTO consent_records (user_id, company_id, service_tag, doc_version, granted_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, service_tag, doc_version) DO NOTHING`

	_, err := r.pool.Exec(ctx, query,
		record.UserID,
		record.CompanyID,
		record.ServiceTag,
		record.DocVersion,
		record.GrantedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save consent record: %w", err)
	}

	return nil
}
