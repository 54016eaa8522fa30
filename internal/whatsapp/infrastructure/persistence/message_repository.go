package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/whatsapp/domain"
)

// PostgresMessageRepository implements domain.MessageRepository using PostgreSQL.
type PostgresMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMessageRepository creates a new PostgreSQL message repository.
func NewPostgresMessageRepository(pool *pgxpool.Pool) *PostgresMessageRepository {
	return &PostgresMessageRepository{pool: pool}
}

// ListBySession retrieves a session's messages, newest first.
func (r *PostgresMessageRepository) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*domain.Message, error) {
	query := `
		SELECT id, company_id, session_id, direction, peer_number, body, sent_at
		FROM wa_messages
		WHERE session_id = $1
		ORDER BY sent_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var m domain.Message
		err := rows.Scan(
			&m.ID,
			&m.CompanyID,
			&m.SessionID,
			&m.Direction,
			&m.PeerNumber,
			&m.Body,
			&m.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}

	return messages, rows.Err()
}

// DeleteByCompany removes all of a company's messages.
func (r *PostgresMessageRepository) DeleteByCompany(ctx context.Context, companyID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM wa_messages WHERE company_id = $1`, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete messages: %w", err)
	}
	return nil
}
