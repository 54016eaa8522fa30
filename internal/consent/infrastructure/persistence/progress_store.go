package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/porticohq/portico/internal/consent/domain"
	"github.com/porticohq/portico/internal/shared/infrastructure/localstore"
)

// LocalProgressStore implements domain.ProgressStore on the local SQLite
// store. Read progress stays on this installation; it is not platform data.
type LocalProgressStore struct {
	store *localstore.Store
}

// NewLocalProgressStore creates a progress store backed by the local store.
func NewLocalProgressStore(store *localstore.Store) *LocalProgressStore {
	return &LocalProgressStore{store: store}
}

// Get retrieves the saved progress, or a zero progress when none exists.
func (s *LocalProgressStore) Get(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string) (domain.ReadProgress, error) {
	query := `
		SELECT offset_px, viewport_px, content_px
		FROM disclosure_progress
		WHERE user_id = ? AND service_tag = ? AND doc_version = ?`

	var progress domain.ReadProgress
	err := s.store.DB().QueryRowContext(ctx, query, userID.String(), serviceTag, docVersion).Scan(
		&progress.Offset,
		&progress.Viewport,
		&progress.ContentHeight,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ReadProgress{}, nil
		}
		return domain.ReadProgress{}, fmt.Errorf("failed to get read progress: %w", err)
	}

	return progress, nil
}

// Save persists the progress.
func (s *LocalProgressStore) Save(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string, progress domain.ReadProgress) error {
	query := `
		INSERT INTO disclosure_progress (user_id, service_tag, doc_version, offset_px, viewport_px, content_px, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, service_tag, doc_version) DO UPDATE SET
			offset_px = excluded.offset_px,
			viewport_px = excluded.viewport_px,
			content_px = excluded.content_px,
			updated_at = excluded.updated_at`

	_, err := s.store.DB().ExecContext(ctx, query,
		userID.String(),
		serviceTag,
		docVersion,
		progress.Offset,
		progress.Viewport,
		progress.ContentHeight,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save read progress: %w", err)
	}

	return nil
}
