package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/notifications/domain"
)

// PostgresMaintenanceWindowRepository implements domain.MaintenanceWindowRepository using PostgreSQL.
type PostgresMaintenanceWindowRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMaintenanceWindowRepository creates a new PostgreSQL maintenance window repository.
func NewPostgresMaintenanceWindowRepository(pool *pgxpool.Pool) *PostgresMaintenanceWindowRepository {
	return &PostgresMaintenanceWindowRepository{pool: pool}
}

// ListUpcoming retrieves windows that are active or in the future.
func (r *PostgresMaintenanceWindowRepository) ListUpcoming(ctx context.Context) ([]*domain.MaintenanceWindow, error) {
	query := `
		SELECT id, reason, starts_at, ends_at
		FROM maintenance_windows
		WHERE ends_at > now()
		ORDER BY starts_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance windows: %w", err)
	}
	defer rows.Close()

	var windows []*domain.MaintenanceWindow
	for rows.Next() {
		var w domain.MaintenanceWindow
		err := rows.Scan(
			&w.ID,
			&w.Reason,
			&w.StartsAt,
			&w.EndsAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance window: %w", err)
		}
		windows = append(windows, &w)
	}

	return windows, rows.Err()
}
