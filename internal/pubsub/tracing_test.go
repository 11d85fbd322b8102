package pubsub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newRecordingBridge(t *testing.T) (*WatermillBridge, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	bridge := NewWatermillBridge(false, WithTracer(tp.Tracer("test")))
	t.Cleanup(func() { _ = bridge.Close() })
	return bridge, recorder
}

func spanNamed(spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func TestWatermillBridge_TracesPublishAndProcess(t *testing.T) {
	bridge, recorder := newRecordingBridge(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handled := make(chan trace.SpanContext, 1)
	received := make(chan Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "partners.traced", func(ctx context.Context, msg Message) error {
		handled <- trace.SpanContextFromContext(ctx)
		received <- msg
		return nil
	}))

	require.NoError(t, bridge.Publish(ctx, Message{
		Topic:    "partners.traced",
		Payload:  []byte(`{}`),
		Metadata: map[string]string{"request_id": "req-1"},
	}))

	var handlerSpan trace.SpanContext
	select {
	case handlerSpan = <-handled:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
	msg := <-received
	assert.Equal(t, map[string]string{"request_id": "req-1"}, msg.Metadata, "trace headers stay inside the bridge")

	require.Eventually(t, func() bool { return len(recorder.Ended()) == 2 }, 2*time.Second, 10*time.Millisecond)
	spans := recorder.Ended()

	publish := spanNamed(spans, "pubsub.publish partners.traced")
	process := spanNamed(spans, "pubsub.process partners.traced")
	require.NotNil(t, publish)
	require.NotNil(t, process)

	assert.Equal(t, trace.SpanKindProducer, publish.SpanKind())
	assert.Equal(t, trace.SpanKindConsumer, process.SpanKind())
	assert.Equal(t, publish.SpanContext().TraceID(), process.SpanContext().TraceID())
	assert.Equal(t, publish.SpanContext().SpanID(), process.Parent().SpanID())
	assert.Equal(t, process.SpanContext().SpanID(), handlerSpan.SpanID())
}

func TestWatermillBridge_TracesDroppedMessage(t *testing.T) {
	bridge, recorder := newRecordingBridge(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bridge.Subscribe(ctx, "partners.broken", func(ctx context.Context, msg Message) error {
		return errors.New("disk full")
	}))
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "partners.broken", Payload: []byte(`{}`)}))

	require.Eventually(t, func() bool {
		return spanNamed(recorder.Ended(), "pubsub.process partners.broken") != nil
	}, 2*time.Second, 10*time.Millisecond)

	process := spanNamed(recorder.Ended(), "pubsub.process partners.broken")
	assert.Equal(t, codes.Error, process.Status().Code)
	assert.Equal(t, "disk full", process.Status().Description)
	assert.Len(t, process.Events(), maxAttempts, "every failed attempt is recorded")
}

func TestSetupTracing(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		tracer, shutdown, err := SetupTracing(context.Background(), TracingConfig{})
		require.NoError(t, err)

		_, span := tracer.Start(context.Background(), "noop")
		assert.False(t, span.SpanContext().IsValid())
		span.End()
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("exports to zipkin on shutdown", func(t *testing.T) {
		var posts atomic.Int32
		collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				posts.Add(1)
			}
			w.WriteHeader(http.StatusAccepted)
		}))
		defer collector.Close()

		tracer, shutdown, err := SetupTracing(context.Background(), TracingConfig{
			Enabled:     true,
			ServiceName: "gridgarden-test",
			ZipkinURL:   collector.URL + "/api/v2/spans",
		})
		require.NoError(t, err)

		_, span := tracer.Start(context.Background(), "inquiry")
		assert.True(t, span.SpanContext().IsValid())
		span.End()

		require.NoError(t, shutdown(context.Background()))
		assert.Equal(t, int32(1), posts.Load())
	})
}
