package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/catalog/domain"
)

// PostgresServiceInstanceRepository implements domain.ServiceInstanceRepository using PostgreSQL.
type PostgresServiceInstanceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresServiceInstanceRepository creates a new PostgreSQL service instance repository.
func NewPostgresServiceInstanceRepository(pool *pgxpool.Pool) *PostgresServiceInstanceRepository {
	return &PostgresServiceInstanceRepository{pool: pool}
}

// ListByCompany retrieves every instance booked by a company.
func (r *PostgresServiceInstanceRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.ServiceInstance, error) {
	query := `
		SELECT id, company_id, type_id, status, tier, created_at
		FROM service_instances
		WHERE company_id = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service instances: %w", err)
	}
	defer rows.Close()

	var instances []*domain.ServiceInstance
	for rows.Next() {
		var inst domain.ServiceInstance
		err := rows.Scan(
			&inst.ID,
			&inst.CompanyID,
			&inst.TypeID,
			&inst.Status,
			&inst.Tier,
			&inst.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service instance: %w", err)
		}
		instances = append(instances, &inst)
	}

	return instances, rows.Err()
}
