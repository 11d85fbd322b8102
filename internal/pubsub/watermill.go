package pubsub

import (
	"context"
	"log/slog"
	"slices"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// maxAttempts bounds how often a handler is invoked for a single message
// before it is dropped.
const maxAttempts = 3

// metaKeyTopic carries Message.Topic through watermill's metadata.
const metaKeyTopic = "topic"

// propagator carries the publisher's span to the subscribers in metadata.
var propagator = propagation.TraceContext{}

// WatermillBridge implements the Publisher and Subscriber interfaces using watermill's GoChannel.
type WatermillBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger watermill.LoggerAdapter
	tracer trace.Tracer
}

// BridgeOption configures a WatermillBridge.
type BridgeOption func(*WatermillBridge)

// WithTracer traces every publish and every handled message.
func WithTracer(tracer trace.Tracer) BridgeOption {
	return func(wb *WatermillBridge) {
		wb.tracer = tracer
	}
}

// NewWatermillBridge initializes an in-process Pub/Sub system backed by
// watermill's GoChannel. debug enables watermill's own debug logging.
func NewWatermillBridge(debug bool, opts ...BridgeOption) *WatermillBridge {
	logger := watermill.NewStdLogger(debug, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: 64,
		},
		logger,
	)

	wb := &WatermillBridge{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
		tracer: noop.NewTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(wb)
	}
	return wb
}

// toWatermill converts a Message into a watermill message with a fresh UUID.
func toWatermill(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)
	return wmMsg
}

// fromWatermill converts a watermill message back into a Message, leaving
// out the bridge's own metadata.
func fromWatermill(wmMsg *message.Message) Message {
	reserved := append(propagator.Fields(), metaKeyTopic)
	metadata := make(map[string]string, len(wmMsg.Metadata))
	for k, v := range wmMsg.Metadata {
		if !slices.Contains(reserved, k) {
			metadata[k] = v
		}
	}
	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := toWatermill(msg)

	ctx, span := wb.tracer.Start(ctx, "pubsub.publish "+msg.Topic,
		trace.WithSpanKind(trace.SpanKindProducer),
		messagingAttributes(msg.Topic, "publish", wmMsg.UUID, len(msg.Payload)),
	)
	defer span.End()
	propagator.Inject(ctx, propagation.MapCarrier(wmMsg.Metadata))

	if err := wb.pub.Publish(msg.Topic, wmMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Subscribe implements the Subscriber interface. Messages are processed in a
// background goroutine; Subscribe returns once the subscription is active.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			wb.process(ctx, topic, wmMsg, handler)
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// process runs handler with bounded retries. The message is always acked:
// a nack would make GoChannel redeliver it forever.
func (wb *WatermillBridge) process(ctx context.Context, topic string, wmMsg *message.Message, handler Handler) {
	defer wmMsg.Ack()
	msg := fromWatermill(wmMsg)

	ctx = propagator.Extract(ctx, propagation.MapCarrier(wmMsg.Metadata))
	ctx, span := wb.tracer.Start(ctx, "pubsub.process "+topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		messagingAttributes(topic, "process", wmMsg.UUID, len(wmMsg.Payload)),
	)
	defer span.End()

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = handler(ctx, msg); err == nil {
			return
		}
		span.RecordError(err)
		slog.Warn("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "attempt", attempt, "error", err)
		if ctx.Err() != nil {
			break
		}
	}
	span.SetStatus(codes.Error, err.Error())
	slog.Error("Dropping message after failed attempts", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
}

// Close shuts down the bridge. Closing the GoChannel ends all subscriptions.
func (wb *WatermillBridge) Close() error {
	return wb.sub.Close()
}
