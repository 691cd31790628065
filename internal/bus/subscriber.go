// Package bus receives consolidated track events from the camera's
// message bus and hands each raw payload to a delivery callback.
package bus

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/banshee-data/track-overlay/internal/monitoring"
)

// Config identifies the topic/source pair this subscriber listens on.
type Config struct {
	// Topic is the bus topic carrying consolidated track events.
	Topic string

	// Source is the video source the topic is scoped to.
	Source string
}

// DefaultConfig returns the subscription used on a single-sensor camera.
func DefaultConfig() Config {
	return Config{
		Topic:  "consolidated-track.v1",
		Source: "1",
	}
}

// Channel returns the bus channel name for the topic/source pair.
func (c Config) Channel() string {
	return c.Topic + ":" + c.Source
}

// Handler is invoked on the subscriber's delivery goroutine with each
// raw message payload. It must not block; slow consumers sit behind a
// non-blocking hand-off, not behind the bus.
type Handler func(payload []byte)

// Subscriber delivers messages from one bus channel to a Handler.
type Subscriber struct {
	client  *redis.Client
	config  Config
	handler Handler
}

// NewSubscriber creates a Subscriber. Run must be called to start
// delivery.
func NewSubscriber(client *redis.Client, config Config, handler Handler) *Subscriber {
	return &Subscriber{
		client:  client,
		config:  config,
		handler: handler,
	}
}

// Run subscribes and delivers messages until ctx is cancelled or the
// bus connection is lost. The subscription is confirmed before the
// first delivery so a refused subscribe surfaces immediately.
func (s *Subscriber) Run(ctx context.Context) error {
	channel := s.config.Channel()

	pubsub := s.client.Subscribe(ctx, channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", channel, err)
	}
	monitoring.Debugf("[Bus] Subscribed to %s", channel)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return fmt.Errorf("bus connection closed on %s", channel)
			}
			s.handler([]byte(msg.Payload))
		}
	}
}
