package services

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
)

type ViewTimelineUseCase struct {
	messages ports.MessageRepository
}

func NewViewTimelineUseCase(messages ports.MessageRepository) *ViewTimelineUseCase {
	return &ViewTimelineUseCase{messages: messages}
}

func (uc *ViewTimelineUseCase) Handle(ctx context.Context, query ports.ViewTimelineQuery, presenter ports.TimelinePresenter) error {
	ctx, span := tracer.Start(ctx, "ViewTimeline")
	defer span.End()
	span.SetAttributes(attribute.String("user", query.User))

	messages, err := uc.messages.GetAllMessagesOfUser(ctx, query.User)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("get messages of %s: %w", query.User, err)
	}

	presenter.Present(domain.NewTimeline(messages))
	return nil
}
