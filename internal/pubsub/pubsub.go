package pubsub

import (
	"context"
)

// Message is one event on the bus. Typed payloads are handled by Event.
type Message struct {
	// Topic names the event, e.g. "partners.inquiry.received".
	Topic string
	// Payload is the JSON encoded event.
	Payload []byte
	// Metadata carries request scoped context such as the request ID.
	Metadata map[string]string
}

// Handler processes one message. A returned error makes the bus retry.
type Handler func(ctx context.Context, msg Message) error

// Publisher sends messages to every subscriber of their topic.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber delivers the messages of a topic to a handler.
type Subscriber interface {
	// Subscribe returns once the subscription is active. The handler runs in
	// the background until ctx is canceled or the subscriber is closed.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
