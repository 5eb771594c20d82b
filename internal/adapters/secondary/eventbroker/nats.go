package eventbroker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

const (
	StreamName     = "CRAFTY"
	SubjectPattern = "crafty.>"

	SubjectMessagePosted = "crafty.message.posted"
	SubjectMessageEdited = "crafty.message.edited"
	SubjectUserFollowed  = "crafty.user.followed"
)

// msgPublisher is the slice of jetstream.JetStream the broker needs.
type msgPublisher interface {
	PublishMsg(ctx context.Context, msg *nats.Msg, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

type NatsBroker struct {
	js msgPublisher
	nc *nats.Conn
}

// NewNatsBroker connects and makes sure the stream exists (idempotent).
func NewNatsBroker(ctx context.Context, url string) (*NatsBroker, error) {
	nc, err := nats.Connect(url, nats.Name("crafty"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{SubjectPattern},
		Storage:  jetstream.FileStorage,
		Replicas: 1,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create stream: %w", err)
	}

	return &NatsBroker{js: js, nc: nc}, nil
}

func newBroker(js msgPublisher) *NatsBroker {
	return &NatsBroker{js: js}
}

type MessageEvent struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
}

type UserFollowedEvent struct {
	User     string `json:"user"`
	Followee string `json:"followee"`
}

func (n *NatsBroker) PublishMessagePosted(ctx context.Context, message domain.MessageData) error {
	return n.publish(ctx, SubjectMessagePosted, toMessageEvent(message))
}

func (n *NatsBroker) PublishMessageEdited(ctx context.Context, message domain.MessageData) error {
	return n.publish(ctx, SubjectMessageEdited, toMessageEvent(message))
}

func (n *NatsBroker) PublishUserFollowed(ctx context.Context, followee domain.Followee) error {
	return n.publish(ctx, SubjectUserFollowed, UserFollowedEvent{User: followee.User, Followee: followee.Followee})
}

// Close drains pending publishes. No-op for brokers built without a connection.
func (n *NatsBroker) Close() error {
	if n.nc == nil {
		return nil
	}
	return n.nc.Drain()
}

func (n *NatsBroker) publish(ctx context.Context, subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &nats.Msg{
		Subject: subject,
		Data:    data,
		Header:  nats.Header{},
	}
	// Carry the current trace into the message headers.
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	ack, err := n.js.PublishMsg(ctx, msg)
	if err != nil {
		return fmt.Errorf("nats publish %s: %w", subject, err)
	}

	slog.Debug("📢 Event published", "subject", subject, "stream", ack.Stream, "seq", ack.Sequence)
	return nil
}

func toMessageEvent(m domain.MessageData) MessageEvent {
	return MessageEvent{ID: m.ID, Author: m.Author, Text: m.Text, PublishedAt: m.PublishedAt}
}
