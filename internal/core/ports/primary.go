package ports

import (
	"context"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/result"
)

// --- INPUTS (Command Pattern) ---

type PostMessageCommand struct {
	ID     string
	Text   string
	Author string
}

type EditMessageCommand struct {
	MessageID string
	Text      string
}

type FollowUserCommand struct {
	User         string
	UserToFollow string
}

type ViewTimelineQuery struct {
	User string
}

type ViewWallQuery struct {
	User string
}

// --- OUTPUT BOUNDARY ---

// TimelinePresenter receives the computed timeline. Rendering (JSON, table)
// is the presenter's business.
type TimelinePresenter interface {
	Present(timeline *domain.Timeline)
}

// --- DRIVING (what the core exposes to HTTP and CLI) ---

type MessagePoster interface {
	Handle(ctx context.Context, cmd PostMessageCommand) (result.Result[result.Void], error)
}

type MessageEditor interface {
	Handle(ctx context.Context, cmd EditMessageCommand) (result.Result[result.Void], error)
}

type UserFollower interface {
	Handle(ctx context.Context, cmd FollowUserCommand) error
}

type TimelineViewer interface {
	Handle(ctx context.Context, query ViewTimelineQuery, presenter TimelinePresenter) error
}

type WallViewer interface {
	Handle(ctx context.Context, query ViewWallQuery, presenter TimelinePresenter) error
}
