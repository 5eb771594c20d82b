package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
	"github.com/MaximeSarrato/crafty/internal/core/result"
)

type PostMessageUseCase struct {
	messages  ports.MessageRepository
	clock     ports.DateProvider
	publisher ports.EventPublisher
}

func NewPostMessageUseCase(messages ports.MessageRepository, clock ports.DateProvider, publisher ports.EventPublisher) *PostMessageUseCase {
	return &PostMessageUseCase{messages: messages, clock: clock, publisher: publisher}
}

func (uc *PostMessageUseCase) Handle(ctx context.Context, cmd ports.PostMessageCommand) (result.Result[result.Void], error) {
	ctx, span := tracer.Start(ctx, "PostMessage")
	defer span.End()
	span.SetAttributes(attribute.String("message.id", cmd.ID), attribute.String("message.author", cmd.Author))

	// 1. Build (validation happens here, nothing is persisted on failure)
	message, err := domain.NewMessage(domain.MessageData{
		ID:          cmd.ID,
		Author:      cmd.Author,
		Text:        cmd.Text,
		PublishedAt: uc.clock.Now(),
	})
	if err != nil {
		return result.Err[result.Void](err), nil
	}

	// 2. Source of truth
	if err := uc.messages.Save(ctx, message); err != nil {
		span.RecordError(err)
		return result.Result[result.Void]{}, fmt.Errorf("save message %s: %w", cmd.ID, err)
	}

	// 3. Event, best effort: the message is already stored.
	if err := uc.publisher.PublishMessagePosted(ctx, message.Data()); err != nil {
		slog.Error("⚠️ Failed to publish message.posted", "message_id", cmd.ID, "error", err)
	}

	return result.OkVoid(), nil
}
