package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MaximeSarrato/crafty/internal/core/ports"
	"github.com/MaximeSarrato/crafty/internal/core/result"
)

type EditMessageUseCase struct {
	messages  ports.MessageRepository
	publisher ports.EventPublisher
}

func NewEditMessageUseCase(messages ports.MessageRepository, publisher ports.EventPublisher) *EditMessageUseCase {
	return &EditMessageUseCase{messages: messages, publisher: publisher}
}

// Handle returns an error wrapping domain.ErrMessageNotFound when the id is unknown.
func (uc *EditMessageUseCase) Handle(ctx context.Context, cmd ports.EditMessageCommand) (result.Result[result.Void], error) {
	ctx, span := tracer.Start(ctx, "EditMessage")
	defer span.End()
	span.SetAttributes(attribute.String("message.id", cmd.MessageID))

	message, err := uc.messages.GetByID(ctx, cmd.MessageID)
	if err != nil {
		span.RecordError(err)
		return result.Result[result.Void]{}, fmt.Errorf("get message %s: %w", cmd.MessageID, err)
	}

	if err := message.EditText(cmd.Text); err != nil {
		return result.Err[result.Void](err), nil
	}

	if err := uc.messages.Save(ctx, message); err != nil {
		span.RecordError(err)
		return result.Result[result.Void]{}, fmt.Errorf("save message %s: %w", cmd.MessageID, err)
	}

	if err := uc.publisher.PublishMessageEdited(ctx, message.Data()); err != nil {
		slog.Error("⚠️ Failed to publish message.edited", "message_id", cmd.MessageID, "error", err)
	}

	return result.OkVoid(), nil
}
