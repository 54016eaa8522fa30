// Package commands provides command handlers for the notification surface.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/porticohq/portico/internal/notifications/domain"
	"github.com/porticohq/portico/internal/shared/infrastructure/eventbus"
)

// MarkNoticeReadCommand records that the user read a notice.
type MarkNoticeReadCommand struct {
	UserID   uuid.UUID
	NoticeID uuid.UUID
}

// MarkNoticeReadHandler marks notices read. The unread badge only drops
// after the platform write succeeded; a failed write keeps the notice
// unread instead of faking the count locally.
type MarkNoticeReadHandler struct {
	notices   domain.NoticeRepository
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewMarkNoticeReadHandler creates a new mark notice read handler.
func NewMarkNoticeReadHandler(notices domain.NoticeRepository, publisher eventbus.Publisher, logger *slog.Logger) *MarkNoticeReadHandler {
	return &MarkNoticeReadHandler{notices: notices, publisher: publisher, logger: logger}
}

// Handle executes the mark notice read command.
func (h *MarkNoticeReadHandler) Handle(ctx context.Context, cmd MarkNoticeReadCommand) error {
	if cmd.UserID == uuid.Nil || cmd.NoticeID == uuid.Nil {
		return fmt.Errorf("user and notice IDs are required")
	}

	if err := h.notices.MarkRead(ctx, cmd.UserID, cmd.NoticeID); err != nil {
		return fmt.Errorf("failed to mark notice read: %w", err)
	}

	payload, err := json.Marshal(map[string]any{
		"user_id":   cmd.UserID,
		"notice_id": cmd.NoticeID,
		"read_at":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Error("failed to encode notice read event", "error", err)
		return nil
	}
	if err := h.publisher.Publish(ctx, eventbus.RoutingKeyNoticeRead, payload); err != nil {
		h.logger.Error("failed to publish notice read event", "error", err, "notice_id", cmd.NoticeID)
	}

	return nil
}
