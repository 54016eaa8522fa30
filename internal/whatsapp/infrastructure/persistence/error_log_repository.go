package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/whatsapp/domain"
)

// PostgresErrorLogRepository implements domain.ErrorLogRepository using PostgreSQL.
type PostgresErrorLogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresErrorLogRepository creates a new PostgreSQL error log repository.
func NewPostgresErrorLogRepository(pool *pgxpool.Pool) *PostgresErrorLogRepository {
	return &PostgresErrorLogRepository{pool: pool}
}

// ListByCompany retrieves a company's error logs, newest first.
func (r *PostgresErrorLogRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, limit int) ([]*domain.ErrorLog, error) {
	query := `
		SELECT id, company_id, session_id, code, detail, occurred_at
		FROM wa_error_logs
		WHERE company_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list error logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.ErrorLog
	for rows.Next() {
		var l domain.ErrorLog
		err := rows.Scan(
			&l.ID,
			&l.CompanyID,
			&l.SessionID,
			&l.Code,
			&l.Detail,
			&l.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan error log: %w", err)
		}
		logs = append(logs, &l)
	}

	return logs, rows.Err()
}

// DeleteByCompany removes all of a company's error logs.
func (r *PostgresErrorLogRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wa_error_logs WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete error logs: %w", err)
	}
	return nil
}
