// Package events is the change-notification bus. Mutating components
// publish one event per write, keyed by entity type; consumers
// subscribe to a channel per entity. Delivery is fire-and-forget:
// statistics reads are eventually consistent with writes and no
// consumer may apply back-pressure on a writer.
package events

import (
	"context"
	"encoding/json"
	"time"

	"gymtrack/internal/logger"
	"gymtrack/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "table-changes:"

const (
	ActionInsert = "INSERT"
	ActionUpdate = "UPDATE"
	ActionDelete = "DELETE"
)

// Change describes one committed mutation.
type Change struct {
	Entity  string          `json:"entity"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
	At      time.Time       `json:"at"`
}

type Bus struct {
	redis *redis.Client
}

func New(redisAddr string) *Bus {
	return &Bus{
		redis: redis.NewClient(&redis.Options{Addr: redisAddr}),
	}
}

// NewWithClient is used by tests to inject a mock client.
func NewWithClient(client *redis.Client) *Bus {
	return &Bus{redis: client}
}

func (b *Bus) Close() error {
	return b.redis.Close()
}

// Publish sends a change event for the given entity. Publish failures
// are logged, not returned: a lost notification must never fail the
// write it describes.
func (b *Bus) Publish(ctx context.Context, entity, action string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("Failed to marshal %s event payload: %v", entity, err)
		return
	}

	change := Change{
		Entity:  entity,
		Action:  action,
		Payload: raw,
		At:      time.Now(),
	}

	data, err := json.Marshal(change)
	if err != nil {
		logger.Errorf("Failed to marshal %s change event: %v", entity, err)
		return
	}

	// Published as a string so the wire value is the JSON text itself.
	if err := b.redis.Publish(ctx, channelPrefix+entity, string(data)).Err(); err != nil {
		logger.Errorf("Failed to publish %s change event: %v", entity, err)
		return
	}

	metrics.RecordEventPublished(entity, action)
}

// Subscribe returns a channel of change events for the entity and a
// cancel func that tears the subscription down.
func (b *Bus) Subscribe(ctx context.Context, entity string) (<-chan Change, func()) {
	sub := b.redis.Subscribe(ctx, channelPrefix+entity)
	out := make(chan Change)

	go forward(ctx, sub.Channel(), out)

	cancel := func() {
		_ = sub.Close()
	}
	return out, cancel
}

// forward decodes raw pub/sub messages onto the typed channel. It
// closes out when the source channel closes; malformed payloads are
// logged and skipped.
func forward(ctx context.Context, in <-chan *redis.Message, out chan<- Change) {
	defer close(out)
	for msg := range in {
		var change Change
		if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
			logger.Errorf("Bad change event on %s: %v", msg.Channel, err)
			continue
		}
		select {
		case out <- change:
		case <-ctx.Done():
			return
		}
	}
}
