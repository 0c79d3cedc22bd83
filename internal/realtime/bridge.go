package realtime

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lakshita-01/devPulse/internal/events"
)

const channelPrefix = "devpulse:ws:"

type envelope struct {
	Origin string       `json:"origin"`
	Event  events.Event `json:"event"`
}

// Bridge relays broadcasts across instances through Redis pub/sub. Local
// delivery stays authoritative: every broadcast reaches the local registry
// first, then gets published so peer instances can fan it into theirs.
// Publish failures are swallowed like any other broadcast failure.
type Bridge struct {
	origin   string
	client   *redis.Client
	registry *Registry
	logger   *zap.Logger
}

// NewBridge wraps a registry with a Redis relay.
func NewBridge(client *redis.Client, registry *Registry, logger *zap.Logger) *Bridge {
	return &Bridge{
		origin:   uuid.NewString(),
		client:   client,
		registry: registry,
		logger:   logger,
	}
}

// Broadcast delivers locally and publishes to the workspace channel.
func (b *Bridge) Broadcast(workspaceID string, event events.Event) {
	b.registry.Broadcast(workspaceID, event)

	payload, err := json.Marshal(envelope{Origin: b.origin, Event: event})
	if err != nil {
		return
	}
	if err := b.client.Publish(context.Background(), channelPrefix+workspaceID, payload).Err(); err != nil {
		b.logger.Debug("broadcast relay publish failed", zap.Error(err))
	}
}

// Start subscribes to peer broadcasts until ctx is cancelled.
func (b *Bridge) Start(ctx context.Context) {
	sub := b.client.PSubscribe(ctx, channelPrefix+"*")

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				b.handleMessage(msg)
			}
		}
	}()
}

func (b *Bridge) handleMessage(msg *redis.Message) {
	var env envelope
	if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
		b.logger.Debug("broadcast relay message malformed", zap.Error(err))
		return
	}
	if env.Origin == b.origin {
		return
	}
	b.registry.Broadcast(env.Event.WorkspaceID, env.Event)
}
