package eventbroker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

type fakeJetStream struct {
	msgs []*nats.Msg
	err  error
}

func (f *fakeJetStream) PublishMsg(_ context.Context, msg *nats.Msg, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.msgs = append(f.msgs, msg)
	return &jetstream.PubAck{Stream: StreamName, Sequence: uint64(len(f.msgs))}, nil
}

func TestNatsBroker(t *testing.T) {
	at := time.Date(2023, 1, 19, 19, 0, 0, 0, time.UTC)
	message := domain.MessageData{ID: "m1", Author: "Alice", Text: "Hello World", PublishedAt: at}

	t.Run("should publish a posted message on its subject", func(t *testing.T) {
		req := require.New(t)
		js := &fakeJetStream{}
		broker := newBroker(js)

		req.NoError(broker.PublishMessagePosted(context.Background(), message))

		req.Len(js.msgs, 1)
		req.Equal(SubjectMessagePosted, js.msgs[0].Subject)
		var evt MessageEvent
		req.NoError(json.Unmarshal(js.msgs[0].Data, &evt))
		req.Equal(MessageEvent{ID: "m1", Author: "Alice", Text: "Hello World", PublishedAt: at}, evt)
	})

	t.Run("should publish edits and follows on their subjects", func(t *testing.T) {
		req := require.New(t)
		js := &fakeJetStream{}
		broker := newBroker(js)

		req.NoError(broker.PublishMessageEdited(context.Background(), message))
		req.NoError(broker.PublishUserFollowed(context.Background(), domain.Followee{User: "Alice", Followee: "Bob"}))

		req.Equal(SubjectMessageEdited, js.msgs[0].Subject)
		req.Equal(SubjectUserFollowed, js.msgs[1].Subject)
		req.JSONEq(`{"user":"Alice","followee":"Bob"}`, string(js.msgs[1].Data))
	})

	t.Run("should carry the trace context in headers", func(t *testing.T) {
		req := require.New(t)
		prev := otel.GetTextMapPropagator()
		otel.SetTextMapPropagator(propagation.TraceContext{})
		t.Cleanup(func() { otel.SetTextMapPropagator(prev) })

		traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
		ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID:    traceID,
			SpanID:     spanID,
			TraceFlags: trace.FlagsSampled,
		}))

		js := &fakeJetStream{}
		req.NoError(newBroker(js).PublishMessagePosted(ctx, message))
		req.Contains(propagation.HeaderCarrier(js.msgs[0].Header).Get("traceparent"), "4bf92f3577b34da6a3ce929d0e0e4736")
	})

	t.Run("should wrap publish failures", func(t *testing.T) {
		req := require.New(t)
		boom := errors.New("no responders")
		err := newBroker(&fakeJetStream{err: boom}).PublishMessagePosted(context.Background(), message)
		req.ErrorIs(err, boom)
		req.Contains(err.Error(), SubjectMessagePosted)
	})

	t.Run("should close without a connection", func(t *testing.T) {
		require.NoError(t, newBroker(&fakeJetStream{}).Close())
	})
}
