// Package application provides the WhatsApp monitoring and wipe services.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/porticohq/portico/internal/shared/application"
	"github.com/porticohq/portico/internal/shared/infrastructure/realtime"
	"github.com/porticohq/portico/internal/whatsapp/domain"
	"github.com/porticohq/portico/pkg/observability"
)

// RecentMessageLimit caps how many messages per session the monitor loads.
const RecentMessageLimit = 50

// ErrFeedClosed is returned by Run when the change feed closes while the
// monitor is still supposed to be watching.
var ErrFeedClosed = errors.New("change feed closed")

// Snapshot is a fenced view of the monitoring surface.
type Snapshot struct {
	// Seq is the fence sequence this snapshot was fetched under.
	Seq uint64

	// Sessions are the company's sessions.
	Sessions []*domain.Session

	// Messages maps session IDs to their recent messages, newest first.
	Messages map[uuid.UUID][]*domain.Message

	// FetchedAt is when the snapshot was taken.
	FetchedAt time.Time
}

// Monitor keeps a live view of a company's WhatsApp sessions and
// messages. Every change notification triggers a full refetch; the
// feed never carries payloads, so the read pipeline is the only source
// of record state. Stale fetches are fenced out so a slow response
// cannot overwrite a newer one.
type Monitor struct {
	sessions domain.SessionRepository
	messages domain.MessageRepository
	feed     realtime.Feed
	fence    *application.Fence
	logger   *slog.Logger
	metrics  observability.Metrics
}

// NewMonitor creates a new monitor.
func NewMonitor(
	sessions domain.SessionRepository,
	messages domain.MessageRepository,
	feed realtime.Feed,
	logger *slog.Logger,
	metrics observability.Metrics,
) *Monitor {
	return &Monitor{
		sessions: sessions,
		messages: messages,
		feed:     feed,
		fence:    application.NewFence(),
		logger:   logger,
		metrics:  metrics,
	}
}

// Run watches the company until ctx is cancelled. apply is called with
// every admitted snapshot; it is never called after ctx is done.
func (m *Monitor) Run(ctx context.Context, companyID uuid.UUID, apply func(*Snapshot)) error {
	changes, err := m.feed.Subscribe(ctx, companyID)
	if err != nil {
		return fmt.Errorf("failed to subscribe to change feed: %w", err)
	}

	m.refresh(ctx, companyID, apply)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case change, ok := <-changes:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				return ErrFeedClosed
			}
			m.logger.Debug("change notification received",
				"collection", change.Collection,
				"kind", change.Kind,
			)
			m.refresh(ctx, companyID, apply)
		}
	}
}

// refresh refetches the full surface and applies the snapshot if it is
// still the latest.
func (m *Monitor) refresh(ctx context.Context, companyID uuid.UUID, apply func(*Snapshot)) {
	started := time.Now()
	snapshot, err := m.Fetch(ctx, companyID)
	if err != nil {
		m.metrics.Counter("monitor_refresh_total", 1, observability.T("outcome", "error"))
		m.logger.Warn("monitor refresh failed", "error", err, "company_id", companyID)
		return
	}
	if snapshot == nil {
		m.metrics.Counter("monitor_refresh_total", 1, observability.T("outcome", "stale"))
		return
	}
	if ctx.Err() != nil {
		return
	}

	m.metrics.Counter("monitor_refresh_total", 1, observability.T("outcome", "ok"))
	m.metrics.Timing("monitor_refresh_duration_seconds", time.Since(started))
	m.metrics.Gauge("monitor_sessions", float64(len(snapshot.Sessions)))
	apply(snapshot)
}

// Fetch takes a single fenced snapshot. It returns nil without error when
// the fetch was superseded by a newer one.
func (m *Monitor) Fetch(ctx context.Context, companyID uuid.UUID) (*Snapshot, error) {
	seq := m.fence.Issue()

	sessions, err := m.sessions.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	recent := make([][]*domain.Message, len(sessions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, session := range sessions {
		g.Go(func() error {
			msgs, err := m.messages.ListBySession(gctx, session.ID, RecentMessageLimit)
			if err != nil {
				return fmt.Errorf("failed to list messages for session %s: %w", session.ID, err)
			}
			recent[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	messages := make(map[uuid.UUID][]*domain.Message, len(sessions))
	for i, session := range sessions {
		messages[session.ID] = recent[i]
	}

	if !m.fence.Admit(seq) {
		return nil, nil
	}

	return &Snapshot{
		Seq:       seq,
		Sessions:  sessions,
		Messages:  messages,
		FetchedAt: time.Now().UTC(),
	}, nil
}
