// Package persistence provides PostgreSQL implementations of notification repositories.
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/porticohq/portico/internal/notifications/domain"
)

// PostgresNoticeRepository implements domain.NoticeRepository using PostgreSQL.
type PostgresNoticeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNoticeRepository creates a new PostgreSQL notice repository.
func NewPostgresNoticeRepository(pool *pgxpool.Pool) *PostgresNoticeRepository {
	return &PostgresNoticeRepository{pool: pool}
}

// ListForUser retrieves published notices with the user's read state.
func (r *PostgresNoticeRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Notice, error) {
	query := `
		SELECT n.id, n.title, n.body, n.severity, n.published_at, nr.read_at
		FROM notices n
		LEFT JOIN notice_reads nr ON nr.notice_id = n.id AND nr.user_id = $1
		WHERE n.published_at <= now()
		ORDER BY n.published_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	defer rows.Close()

	var notices []*domain.Notice
	for rows.Next() {
		var (
			n      domain.Notice
			readAt sql.NullTime
		)
		err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Body,
			&n.Severity,
			&n.PublishedAt,
			&readAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notice: %w", err)
		}
		if readAt.Valid {
			n.ReadAt = readAt.Time
		}
		notices = append(notices, &n)
	}

	return notices, rows.Err()
}

// MarkRead records that the user read the notice.
func (r *PostgresNoticeRepository) MarkRead(ctx context.Context, userID, noticeID uuid.UUID) error {
	query := `
		INSERT INTO notice_reads (user_id, notice_id, read_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, notice_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, noticeID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to mark notice read: %w", err)
	}
	return nil
}
