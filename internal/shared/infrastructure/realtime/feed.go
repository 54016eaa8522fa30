// Package realtime delivers company-scoped change notifications pushed by
// the platform. Consumers never receive record payloads, only a signal
// that a collection changed; they re-run their read pipeline in response.
package realtime

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Collection identifies a platform collection covered by the feed.
type Collection string

const (
	CollectionSessions Collection = "sessions"
	CollectionMessages Collection = "messages"
)

// ChangeKind identifies the mutation that triggered a notification.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Change is a single change notification.
type Change struct {
	Collection Collection `json:"collection"`
	Kind       ChangeKind `json:"kind"`
	RecordID   string     `json:"record_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Feed is a subscription to a company's change notifications.
type Feed interface {
	// Subscribe starts delivering changes for the company. The returned
	// channel closes when ctx is cancelled or the feed shuts down.
	Subscribe(ctx context.Context, companyID uuid.UUID) (<-chan Change, error)

	// Close releases the feed's resources.
	Close() error
}

// NoopFeed is a feed that never delivers anything, used when no realtime
// backend is configured.
type NoopFeed struct{}

// Subscribe returns a channel that closes with the context.
func (NoopFeed) Subscribe(ctx context.Context, companyID uuid.UUID) (<-chan Change, error) {
	out := make(chan Change)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out, nil
}

// Close is a no-op.
func (NoopFeed) Close() error { return nil }
