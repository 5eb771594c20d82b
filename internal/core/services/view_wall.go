package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
)

type ViewWallUseCase struct {
	messages  ports.MessageRepository
	followees ports.FolloweesRepository
}

func NewViewWallUseCase(messages ports.MessageRepository, followees ports.FolloweesRepository) *ViewWallUseCase {
	return &ViewWallUseCase{messages: messages, followees: followees}
}

// Handle merges the user's messages with those of every followee.
// One failed fetch fails the whole wall.
func (uc *ViewWallUseCase) Handle(ctx context.Context, query ports.ViewWallQuery, presenter ports.TimelinePresenter) error {
	ctx, span := tracer.Start(ctx, "ViewWall")
	defer span.End()
	span.SetAttributes(attribute.String("user", query.User))

	followees, err := uc.followees.GetFolloweesOf(ctx, query.User)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("get followees of %s: %w", query.User, err)
	}

	authors := append([]string{query.User}, followees...)
	slog.Debug("🧱 Building wall", "user", query.User, "authors", len(authors))

	// Each goroutine owns its slot, no locking needed.
	perAuthor := make([][]*domain.Message, len(authors))
	g, gctx := errgroup.WithContext(ctx)
	for i, author := range authors {
		i, author := i, author
		g.Go(func() error {
			msgs, err := uc.messages.GetAllMessagesOfUser(gctx, author)
			if err != nil {
				return fmt.Errorf("get messages of %s: %w", author, err)
			}
			perAuthor[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	presenter.Present(domain.NewTimeline(lo.Flatten(perAuthor)))
	return nil
}
