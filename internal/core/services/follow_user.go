package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
)

type FollowUserUseCase struct {
	followees ports.FolloweesRepository
	publisher ports.EventPublisher
}

func NewFollowUserUseCase(followees ports.FolloweesRepository, publisher ports.EventPublisher) *FollowUserUseCase {
	return &FollowUserUseCase{followees: followees, publisher: publisher}
}

// Handle records the edge as is. Self-follows and repeats are left to the store.
func (uc *FollowUserUseCase) Handle(ctx context.Context, cmd ports.FollowUserCommand) error {
	ctx, span := tracer.Start(ctx, "FollowUser")
	defer span.End()
	span.SetAttributes(attribute.String("user", cmd.User), attribute.String("followee", cmd.UserToFollow))

	edge := domain.Followee{User: cmd.User, Followee: cmd.UserToFollow}
	if err := uc.followees.FollowUser(ctx, edge); err != nil {
		span.RecordError(err)
		return fmt.Errorf("follow %s -> %s: %w", cmd.User, cmd.UserToFollow, err)
	}

	if err := uc.publisher.PublishUserFollowed(ctx, edge); err != nil {
		slog.Error("⚠️ Failed to publish user.followed", "user", cmd.User, "followee", cmd.UserToFollow, "error", err)
	}
	return nil
}
