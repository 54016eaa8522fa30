// Package persistence provides PostgreSQL repositories and the local wipe
// journal for the WhatsApp surface.
package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/whatsapp/domain"
)

// PostgresSessionRepository implements domain.SessionRepository using PostgreSQL.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSessionRepository creates a new PostgreSQL session repository.
func NewPostgresSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// ListByCompany retrieves a company's sessions.
func (r *PostgresSessionRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*domain.Session, error) {
	query := `
		SELECT id, company_id, phone_number, status, last_seen_at, created_at
		FROM wa_sessions
		WHERE company_id = $1
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		err := rows.Scan(
			&s.ID,
			&s.CompanyID,
			&s.PhoneNumber,
			&s.Status,
			&s.LastSeenAt,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, &s)
	}

	return sessions, rows.Err()
}

// DeleteByCompany removes all of a company's sessions.
func (r *PostgresSessionRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wa_sessions WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	return nil
}
