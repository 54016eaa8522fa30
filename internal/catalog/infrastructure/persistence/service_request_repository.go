package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/catalog/domain"
)

// PostgresServiceRequestRepository implements domain.ServiceRequestRepository using PostgreSQL.
type PostgresServiceRequestRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresServiceRequestRepository creates a new PostgreSQL service request repository.
func NewPostgresServiceRequestRepository(pool *pgxpool.Pool) *PostgresServiceRequestRepository {
	return &PostgresServiceRequestRepository{pool: pool}
}

// ListByCompany retrieves a company's requests, newest first.
func (r *PostgresServiceRequestRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.ServiceRequest, error) {
	query := `
		SELECT id, company_id, type_id, COALESCE(package_tier, ''), requested_by, status, COALESCE(review_notes, ''), created_at, updated_at
		FROM service_requests
		WHERE company_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.ServiceRequest
	for rows.Next() {
		var req domain.ServiceRequest
		err := rows.Scan(
			&req.ID,
			&req.CompanyID,
			&req.TypeID,
			&req.Tier,
			&req.RequestedBy,
			&req.Status,
			&req.ReviewNotes,
			&req.CreatedAt,
			&req.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service request: %w", err)
		}
		requests = append(requests, &req)
	}

	return requests, rows.Err()
}

// Create persists a new request.
func (r *PostgresServiceRequestRepository) Create(ctx context.Context, request *domain.ServiceRequest) error {
	query := `
		INSERT INTO service_requests (id, company_id, type_id, package_tier, requested_by, status, review_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		request.ID,
		request.CompanyID,
		request.TypeID,
		request.Tier,
		request.RequestedBy,
		request.Status,
		request.ReviewNotes,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}

	return nil
}
