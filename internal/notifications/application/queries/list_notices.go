// Package queries provides query handlers for the notification surface.
package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/porticohq/portico/internal/notifications/domain"
)

// ListNoticesQuery requests the user's notices.
type ListNoticesQuery struct {
	UserID     uuid.UUID
	UnreadOnly bool
}

// ListNoticesResult holds the notices plus an unread count for badges.
type ListNoticesResult struct {
	Notices []*domain.Notice
	Unread  int
}

// ListNoticesHandler lists operator notices for a user.
type ListNoticesHandler struct {
	notices domain.NoticeRepository
}

// NewListNoticesHandler creates a new list notices handler.
func NewListNoticesHandler(notices domain.NoticeRepository) *ListNoticesHandler {
	return &ListNoticesHandler{notices: notices}
}

// Handle executes the list notices query.
func (h *ListNoticesHandler) Handle(ctx context.Context, query ListNoticesQuery) (*ListNoticesResult, error) {
	if query.UserID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}

	notices, err := h.notices.ListForUser(ctx, query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}

	result := &ListNoticesResult{}
	for _, notice := range notices {
		if !notice.Read() {
			result.Unread++
		}
		if query.UnreadOnly && notice.Read() {
			continue
		}
		result.Notices = append(result.Notices, notice)
	}

	return result, nil
}

// ListMaintenanceQuery requests upcoming maintenance windows.
type ListMaintenanceQuery struct {
	// Now anchors the active check; zero means the current time.
	Now time.Time
}

// MaintenanceEntry pairs a window with whether it is currently active.
type MaintenanceEntry struct {
	Window *domain.MaintenanceWindow
	Active bool
}

// ListMaintenanceHandler lists upcoming maintenance windows.
type ListMaintenanceHandler struct {
	windows domain.MaintenanceWindowRepository
}

// NewListMaintenanceHandler creates a new list maintenance handler.
func NewListMaintenanceHandler(windows domain.MaintenanceWindowRepository) *ListMaintenanceHandler {
	return &ListMaintenanceHandler{windows: windows}
}

// Handle executes the list maintenance query.
func (h *ListMaintenanceHandler) Handle(ctx context.Context, query ListMaintenanceQuery) ([]MaintenanceEntry, error) {
	now := query.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windows, err := h.windows.ListUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance windows: %w", err)
	}

	entries := make([]MaintenanceEntry, 0, len(windows))
	for _, window := range windows {
		entries = append(entries, MaintenanceEntry{Window: window, Active: window.Active(now)})
	}
	return entries, nil
}
