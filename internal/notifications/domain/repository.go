package domain

import (
	"context"

	"github.com/google/uuid"
)

// NoticeRepository defines the interface for notice reads and read marks.
type NoticeRepository interface {
	// ListForUser retrieves published notices with the user's read
	// state, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*Notice, error)

	// MarkRead records that the user read the notice.
	MarkRead(ctx context.Context, userID, noticeID uuid.UUID) error
}

// MaintenanceWindowRepository defines the interface for window reads.
type MaintenanceWindowRepository interface {
	// ListUpcoming retrieves windows that are active or in the future.
	ListUpcoming(ctx context.Context) ([]*MaintenanceWindow, error)
}
