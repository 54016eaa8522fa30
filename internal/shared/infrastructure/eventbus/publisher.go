// Package eventbus publishes client-emitted domain events.
package eventbus

import "context"

// Publisher sends domain events to the event bus.
type Publisher interface {
	// Publish sends a message with the given routing key.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close releases the publisher's resources.
	Close() error
}

// Routing keys for events this client emits.
const (
	RoutingKeyRequestSubmitted = "catalog.request.submitted"
	RoutingKeyConsentGranted   = "consent.granted"
	RoutingKeyWipeCompleted    = "account.wipe.completed"
	RoutingKeyNoticeRead       = "notifications.notice.read"
)
