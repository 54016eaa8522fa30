package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces the pub/sub channels the platform publishes to.
const channelPrefix = "portico.company"

// ChannelFor returns the pub/sub channel name for a company and collection.
func ChannelFor(companyID uuid.UUID, collection Collection) string {
	return fmt.Sprintf("%s.%s.%s", channelPrefix, companyID, collection)
}

// RedisFeed implements Feed over Redis pub/sub.
type RedisFeed struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisFeed creates a feed backed by the given Redis client.
func NewRedisFeed(client *redis.Client, logger *slog.Logger) *RedisFeed {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisFeed{client: client, logger: logger}
}

// Subscribe starts delivering changes for the company's sessions and
// messages collections.
func (f *RedisFeed) Subscribe(ctx context.Context, companyID uuid.UUID) (<-chan Change, error) {
	channels := []string{
		ChannelFor(companyID, CollectionSessions),
		ChannelFor(companyID, CollectionMessages),
	}

	sub := f.client.Subscribe(ctx, channels...)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to change feed: %w", err)
	}

	out := make(chan Change)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				change, err := decodeChange([]byte(msg.Payload))
				if err != nil {
					f.logger.Warn("dropping malformed change notification",
						"channel", msg.Channel,
						"error", err,
					)
					continue
				}
				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	f.logger.Info("subscribed to change feed",
		"company_id", companyID,
		"channels", len(channels),
	)
	return out, nil
}

// Close releases the underlying Redis client.
func (f *RedisFeed) Close() error {
	return f.client.Close()
}

func decodeChange(payload []byte) (Change, error) {
	var change Change
	if err := json.Unmarshal(payload, &change); err != nil {
		return Change{}, err
	}
	switch change.Collection {
	case CollectionSessions, CollectionMessages:
	default:
		return Change{}, fmt.Errorf("unknown collection %q", change.Collection)
	}
	return change, nil
}
