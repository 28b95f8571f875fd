package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventType represents the type of event
type EventType string

const (
	EventMessageCreated EventType = "message.created"
)

// Event is the wire format published on the notification channel.
type Event struct {
	Type      EventType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// EventBus publishes domain events over Redis pub/sub so the notify
// process can fan them out to connected clients.
type EventBus struct {
	client  *redis.Client
	channel string
	logger  *zap.SugaredLogger
}

func NewEventBus(client *redis.Client, channel string, logger *zap.SugaredLogger) *EventBus {
	return &EventBus{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

var _ ports.Notifier = (*EventBus)(nil)

// MessageCreated publishes a message.created event.
func (eb *EventBus) MessageCreated(ctx context.Context, msg *domain.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	return eb.publish(ctx, &Event{
		Type:    EventMessageCreated,
		Payload: payload,
	})
}

func (eb *EventBus) publish(ctx context.Context, event *Event) error {
	event.Timestamp = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := eb.client.Publish(ctx, eb.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	eb.logger.Debugw("published event",
		"type", event.Type,
		"channel", eb.channel,
	)

	return nil
}

// Subscribe consumes events from the channel and calls handler for each one.
// It blocks until ctx is cancelled.
func (eb *EventBus) Subscribe(ctx context.Context, handler func(*Event) error) error {
	pubsub := eb.client.Subscribe(ctx, eb.channel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				eb.logger.Warnw("failed to unmarshal event",
					"error", err,
				)
				continue
			}
			if err := handler(&event); err != nil {
				eb.logger.Warnw("event handler failed",
					"type", event.Type,
					"error", err,
				)
			}
		}
	}
}
