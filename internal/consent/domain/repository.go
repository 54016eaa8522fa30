package domain

import (
	"context"

	"github.com/google/uuid"
)

// ConsentRepository defines the interface for platform consent records.
type ConsentRepository interface {
	// Get retrieves the consent record for a user, service and document
	// version. Returns ErrNotGranted when none exists.
	Get(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string) (*ConsentRecord, error)

	// Save persists a consent record.
	Save(ctx context.Context, record *ConsentRecord) error
}

// ProgressStore defines the interface for local disclosure read progress.
type ProgressStore interface {
	// Get retrieves the saved progress, or a zero progress when none
	// was saved yet.
	Get(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string) (ReadProgress, error)

	// Save persists the progress.
	Save(ctx context.Context, userID uuid.UUID, serviceTag, docVersion string, progress ReadProgress) error
}
