package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event[T] binds a topic name to a payload type and provides type-safe
// publishing and subscribing on top of the untyped bus.
type Event[T any] struct {
	topicName string
}

// NewEvent creates a typed event for the given topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Publish encodes payload as JSON and publishes it on the event's topic.
func (e Event[T]) Publish(ctx context.Context, pub Publisher, payload T, metadata map[string]string) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", e.topicName, err)
	}
	return pub.Publish(ctx, Message{
		Topic:    e.topicName,
		Payload:  data,
		Metadata: metadata,
	})
}

// Subscribe decodes every message on the event's topic into T before calling handler.
// Messages that fail to decode are rejected without reaching the handler.
func (e Event[T]) Subscribe(ctx context.Context, sub Subscriber, handler func(ctx context.Context, payload T) error) error {
	return sub.Subscribe(ctx, e.topicName, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s payload: %w", e.topicName, err)
		}
		return handler(ctx, payload)
	})
}
