// Package persistence provides PostgreSQL implementations of catalog repositories.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/porticohq/portico/internal/catalog/domain"
)

// PostgresServiceTypeRepository implements domain.ServiceTypeRepository using PostgreSQL.
type PostgresServiceTypeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresServiceTypeRepository creates a new PostgreSQL service type repository.
func NewPostgresServiceTypeRepository(pool *pgxpool.Pool) *PostgresServiceTypeRepository {
	return &PostgresServiceTypeRepository{pool: pool}
}

// ListAll retrieves every catalog type, ordered by English name.
func (r *PostgresServiceTypeRepository) ListAll(ctx context.Context) ([]*domain.ServiceType, error) {
	query := `
		SELECT id, slug, names, category, status, package_tiers, created_at
		FROM service_types
		ORDER BY names->>'en', slug`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	defer rows.Close()

	var types []*domain.ServiceType
	for rows.Next() {
		var (
			t        domain.ServiceType
			namesRaw []byte
		)
		err := rows.Scan(
			&t.ID,
			&t.Slug,
			&namesRaw,
			&t.Category,
			&t.Status,
			pq.Array(&t.PackageTiers),
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service type: %w", err)
		}
		if len(namesRaw) > 0 {
			if err := json.Unmarshal(namesRaw, &t.Names); err != nil {
				return nil, fmt.Errorf("failed to decode service type names: %w", err)
			}
		}
		types = append(types, &t)
	}

	return types, rows.Err()
}
