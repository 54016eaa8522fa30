package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/porticohq/portico/internal/shared/infrastructure/localstore"
)

// LocalWipeJournal implements application.WipeJournal on the local SQLite
// store. The journal survives process restarts so an interrupted wipe can
// resume where it stopped.
type LocalWipeJournal struct {
	store *localstore.Store
}

// NewLocalWipeJournal creates a wipe journal backed by the local store.
func NewLocalWipeJournal(store *localstore.Store) *LocalWipeJournal {
	return &LocalWipeJournal{store: store}
}

// IsCompleted reports whether the step already ran for the company.
func (j *LocalWipeJournal) IsCompleted(ctx context.Context, companyID uuid.UUID, step string) (bool, error) {
	query := `SELECT 1 FROM wipe_journal WHERE company_id = ? AND step = ?`

	var one int
	err := j.store.DB().QueryRowContext(ctx, query, companyID.String(), step).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read wipe journal: %w", err)
	}
	return true, nil
}

// MarkCompleted records the step as done.
func (j *LocalWipeJournal) MarkCompleted(ctx context.Context, companyID uuid.UUID, step string) error {
	query := `
		INSERT INTO wipe_journal (company_id, step, completed_at)
		VALUES (?, ?, ?)
		ON CONFLICT (company_id, step) DO NOTHING`

	_, err := j.store.DB().ExecContext(ctx, query, companyID.String(), step, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to journal wipe step: %w", err)
	}
	return nil
}

// Clear removes the company's journal entries after a full wipe.
func (j *LocalWipeJournal) Clear(ctx context.Context, companyID uuid.UUID) error {
	_, err := j.store.DB().ExecContext(ctx, `DELETE FROM wipe_journal WHERE company_id = ?`, companyID.String())
	if err != nil {
		return fmt.Errorf("failed to clear wipe journal: %w", err)
	}
	return nil
}
