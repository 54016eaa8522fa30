package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/porticohq/portico/internal/shared/infrastructure/eventbus"
	"github.com/porticohq/portico/internal/whatsapp/domain"
)

// ErrPartialWipe is returned when the wipe stopped partway. Completed
// steps are journaled and skipped on the next attempt.
var ErrPartialWipe = errors.New("data wipe incomplete, rerun to resume")

// Wipe step names, in execution order. Messages go first so a partial
// wipe never leaves messages behind without their sessions.
const (
	StepMessages  = "messages"
	StepSessions  = "sessions"
	StepProfiles  = "profiles"
	StepErrorLogs = "error_logs"
)

// WipeJournal records completed wipe steps so an interrupted wipe can
// resume without repeating work.
type WipeJournal interface {
	// IsCompleted reports whether the step already ran for the company.
	IsCompleted(ctx context.Context, companyID uuid.UUID, step string) (bool, error)

	// MarkCompleted records the step as done.
	MarkCompleted(ctx context.Context, companyID uuid.UUID, step string) error

	// Clear removes the company's journal entries after a full wipe.
	Clear(ctx context.Context, companyID uuid.UUID) error
}

// Wiper deletes all of a company's WhatsApp data in a fixed order. Every
// step is idempotent, so reruns after a partial failure are safe.
type Wiper struct {
	sessions  domain.SessionRepository
	messages  domain.MessageRepository
	profiles  domain.ProfileRepository
	errorLogs domain.ErrorLogRepository
	journal   WipeJournal
	publisher eventbus.Publisher
	logger    *slog.Logger
}

// NewWiper creates a new wiper.
func NewWiper(
	sessions domain.SessionRepository,
	messages domain.MessageRepository,
	profiles domain.ProfileRepository,
	errorLogs domain.ErrorLogRepository,
	journal WipeJournal,
	publisher eventbus.Publisher,
	logger *slog.Logger,
) *Wiper {
	return &Wiper{
		sessions:  sessions,
		messages:  messages,
		profiles:  profiles,
		errorLogs: errorLogs,
		journal:   journal,
		publisher: publisher,
		logger:    logger,
	}
}

// Wipe deletes the company's WhatsApp data. On failure it returns
// ErrPartialWipe with the cause attached; calling Wipe again resumes at
// the first incomplete step.
func (w *Wiper) Wipe(ctx context.Context, companyID uuid.UUID) error {
	if companyID == uuid.Nil {
		return fmt.Errorf("company ID is required")
	}

	steps := []struct {
		name string
		run  func(context.Context, uuid.UUID) error
	}{
		{StepMessages, w.messages.DeleteByCompany},
		{StepSessions, w.sessions.DeleteByCompany},
		{StepProfiles, w.profiles.DeleteByCompany},
		{StepErrorLogs, w.errorLogs.DeleteByCompany},
	}

	for _, step := range steps {
		done, err := w.journal.IsCompleted(ctx, companyID, step.name)
		if err != nil {
			return fmt.Errorf("%w: failed to read wipe journal: %w", ErrPartialWipe, err)
		}
		if done {
			w.logger.Info("wipe step already completed, skipping", "step", step.name, "company_id", companyID)
			continue
		}

		if err := step.run(ctx, companyID); err != nil {
			w.logger.Error("wipe step failed", "step", step.name, "error", err, "company_id", companyID)
			return fmt.Errorf("%w: step %s: %w", ErrPartialWipe, step.name, err)
		}
		if err := w.journal.MarkCompleted(ctx, companyID, step.name); err != nil {
			return fmt.Errorf("%w: failed to journal step %s: %w", ErrPartialWipe, step.name, err)
		}
		w.logger.Info("wipe step completed", "step", step.name, "company_id", companyID)
	}

	if err := w.journal.Clear(ctx, companyID); err != nil {
		w.logger.Warn("failed to clear wipe journal", "error", err, "company_id", companyID)
	}

	w.publishCompleted(ctx, companyID)
	return nil
}

func (w *Wiper) publishCompleted(ctx context.Context, companyID uuid.UUID) {
	payload, err := json.Marshal(map[string]any{
		"company_id":   companyID,
		"completed_at": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		w.logger.Error("failed to encode wipe completed event", "error", err)
		return
	}
	if err := w.publisher.Publish(ctx, eventbus.RoutingKeyWipeCompleted, payload); err != nil {
		w.logger.Error("failed to publish wipe completed event", "error", err, "company_id", companyID)
	}
}
