package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/clock"
	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/eventbroker"
	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/repository/memory"
	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
	"github.com/MaximeSarrato/crafty/internal/core/services"
)

// spyPresenter records the last timeline it was given.
type spyPresenter struct {
	calls    int
	timeline []domain.MessageData
}

func (p *spyPresenter) Present(timeline *domain.Timeline) {
	p.calls++
	p.timeline = timeline.Data()
}

type fixture struct {
	messages  *memory.MessageRepository
	followees *memory.FolloweesRepository
	clock     *clock.StubDateProvider

	post     *services.PostMessageUseCase
	edit     *services.EditMessageUseCase
	follow   *services.FollowUserUseCase
	timeline *services.ViewTimelineUseCase
	wall     *services.ViewWallUseCase
}

func newFixture(now time.Time) *fixture {
	f := &fixture{
		messages:  memory.NewMessageRepository(),
		followees: memory.NewFolloweesRepository(),
		clock:     clock.NewStubDateProvider(now),
	}
	pub := eventbroker.NopPublisher{}
	f.post = services.NewPostMessageUseCase(f.messages, f.clock, pub)
	f.edit = services.NewEditMessageUseCase(f.messages, pub)
	f.follow = services.NewFollowUserUseCase(f.followees, pub)
	f.timeline = services.NewViewTimelineUseCase(f.messages)
	f.wall = services.NewViewWallUseCase(f.messages, f.followees)
	return f
}

func TestPostMessage(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 1, 19, 19, 0, 0, 0, time.UTC)

	t.Run("should store the message with the current time", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)

		res, err := f.post.Handle(ctx, ports.PostMessageCommand{ID: "m1", Text: "Hello World", Author: "Alice"})
		req.NoError(err)
		req.True(res.IsOk())

		stored, ok := f.messages.MessageByID("m1")
		req.True(ok)
		req.Equal(domain.MessageData{ID: "m1", Author: "Alice", Text: "Hello World", PublishedAt: now}, stored)
	})

	t.Run("should refuse a text over 280 characters and save nothing", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)

		res, err := f.post.Handle(ctx, ports.PostMessageCommand{ID: "m1", Text: strings.Repeat("a", 281), Author: "Alice"})
		req.NoError(err)
		req.True(res.IsErr())
		req.ErrorIs(res.Err(), domain.ErrMessageTooLong)
		req.Equal(0, f.messages.Len())
	})

	t.Run("should refuse an empty or blank text", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)

		for _, text := range []string{"", "   "} {
			res, err := f.post.Handle(ctx, ports.PostMessageCommand{ID: "m1", Text: text, Author: "Alice"})
			req.NoError(err)
			req.ErrorIs(res.Err(), domain.ErrMessageEmpty)
		}
		req.Equal(0, f.messages.Len())
	})
}

func TestEditMessage(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 1, 19, 19, 0, 0, 0, time.UTC)
	original := domain.MessageData{ID: "m1", Author: "Alice", Text: "Hello Wrld", PublishedAt: now.Add(-time.Hour)}

	t.Run("should change the text and nothing else", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)
		f.messages.GivenExistingMessages(original)

		res, err := f.edit.Handle(ctx, ports.EditMessageCommand{MessageID: "m1", Text: "Hello World"})
		req.NoError(err)
		req.True(res.IsOk())

		stored, _ := f.messages.MessageByID("m1")
		want := original
		want.Text = "Hello World"
		req.Equal(want, stored)
	})

	t.Run("should keep the stored text when the new one is invalid", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)
		f.messages.GivenExistingMessages(original)

		res, err := f.edit.Handle(ctx, ports.EditMessageCommand{MessageID: "m1", Text: ""})
		req.NoError(err)
		req.ErrorIs(res.Err(), domain.ErrMessageEmpty)

		res, err = f.edit.Handle(ctx, ports.EditMessageCommand{MessageID: "m1", Text: strings.Repeat("a", 281)})
		req.NoError(err)
		req.ErrorIs(res.Err(), domain.ErrMessageTooLong)

		stored, _ := f.messages.MessageByID("m1")
		req.Equal(original, stored)
	})

	t.Run("should fail when the message does not exist", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)

		_, err := f.edit.Handle(ctx, ports.EditMessageCommand{MessageID: "nope", Text: "Hello"})
		req.ErrorIs(err, domain.ErrMessageNotFound)
	})
}

func TestViewTimeline(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 2, 9, 15, 15, 30, 0, time.UTC)

	t.Run("should present the user's messages newest first", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)
		f.messages.GivenExistingMessages(
			domain.MessageData{ID: "m1", Author: "Alice", Text: "first", PublishedAt: now.Add(-3 * time.Minute)},
			domain.MessageData{ID: "m2", Author: "Bob", Text: "bob", PublishedAt: now.Add(-2 * time.Minute)},
			domain.MessageData{ID: "m3", Author: "Alice", Text: "second", PublishedAt: now.Add(-time.Minute)},
		)

		p := &spyPresenter{}
		req.NoError(f.timeline.Handle(ctx, ports.ViewTimelineQuery{User: "Alice"}, p))
		req.Equal(1, p.calls)
		req.Len(p.timeline, 2)
		req.Equal("m3", p.timeline[0].ID)
		req.Equal("m1", p.timeline[1].ID)
	})

	t.Run("should present an empty timeline for a silent user", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)

		p := &spyPresenter{}
		req.NoError(f.timeline.Handle(ctx, ports.ViewTimelineQuery{User: "Zoe"}, p))
		req.Equal(1, p.calls)
		req.Empty(p.timeline)
	})
}

func TestFollowAndWall(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 2, 9, 15, 15, 30, 0, time.UTC)

	t.Run("should show followed users on the wall once followed", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)
		f.messages.GivenExistingMessages(
			domain.MessageData{ID: "a1", Author: "Alice", Text: "I love the weather today", PublishedAt: now.Add(-15 * time.Minute)},
			domain.MessageData{ID: "c1", Author: "Charlie", Text: "I'm in New York today!", PublishedAt: now.Add(-30 * time.Second)},
		)

		p := &spyPresenter{}
		req.NoError(f.wall.Handle(ctx, ports.ViewWallQuery{User: "Charlie"}, p))
		req.Len(p.timeline, 1)

		req.NoError(f.follow.Handle(ctx, ports.FollowUserCommand{User: "Charlie", UserToFollow: "Alice"}))

		req.NoError(f.wall.Handle(ctx, ports.ViewWallQuery{User: "Charlie"}, p))
		req.Len(p.timeline, 2)
		req.Equal("c1", p.timeline[0].ID)
		req.Equal("a1", p.timeline[1].ID)
	})

	t.Run("should merge every followee newest first", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)
		f.followees.GivenExistingFollowees(
			domain.Followee{User: "Alice", Followee: "Bob"},
			domain.Followee{User: "Alice", Followee: "Charlie"},
		)
		f.messages.GivenExistingMessages(
			domain.MessageData{ID: "b1", Author: "Bob", Text: "b1", PublishedAt: now.Add(-4 * time.Minute)},
			domain.MessageData{ID: "a1", Author: "Alice", Text: "a1", PublishedAt: now.Add(-3 * time.Minute)},
			domain.MessageData{ID: "c1", Author: "Charlie", Text: "c1", PublishedAt: now.Add(-2 * time.Minute)},
			domain.MessageData{ID: "b2", Author: "Bob", Text: "b2", PublishedAt: now.Add(-time.Minute)},
			domain.MessageData{ID: "z1", Author: "Zoe", Text: "not followed", PublishedAt: now},
		)

		p := &spyPresenter{}
		req.NoError(f.wall.Handle(ctx, ports.ViewWallQuery{User: "Alice"}, p))

		ids := make([]string, 0, len(p.timeline))
		for _, m := range p.timeline {
			ids = append(ids, m.ID)
		}
		req.Equal([]string{"b2", "c1", "a1", "b1"}, ids)
	})

	t.Run("should store a repeated follow once", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(now)
		cmd := ports.FollowUserCommand{User: "Alice", UserToFollow: "Bob"}
		req.NoError(f.follow.Handle(ctx, cmd))
		req.NoError(f.follow.Handle(ctx, cmd))

		got, err := f.followees.GetFolloweesOf(ctx, "Alice")
		req.NoError(err)
		req.Equal([]string{"Bob"}, got)
	})
}
