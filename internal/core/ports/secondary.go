//go:generate go run go.uber.org/mock/mockgen -source=secondary.go -destination=mocks/mock_secondary.go -package=mocks
package ports

import (
	"context"
	"time"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// --- DRIVEN (what the core needs) ---

// MessageRepository persists messages. Save is an upsert keyed by id.
type MessageRepository interface {
	Save(ctx context.Context, message *domain.Message) error
	GetAllMessagesOfUser(ctx context.Context, author string) ([]*domain.Message, error)

	// GetByID returns domain.ErrMessageNotFound (possibly wrapped) when absent.
	GetByID(ctx context.Context, messageID string) (*domain.Message, error)
}

// FolloweesRepository stores the directed follow relation.
type FolloweesRepository interface {
	FollowUser(ctx context.Context, followee domain.Followee) error

	// GetFolloweesOf returns an empty slice for a user who follows nobody.
	GetFolloweesOf(ctx context.Context, user string) ([]string, error)
}

// DateProvider is injected so publish times are deterministic under test.
type DateProvider interface {
	Now() time.Time
}

// EventPublisher notifies other services after a successful write.
// Publishing is best effort: use cases log failures and carry on.
type EventPublisher interface {
	PublishMessagePosted(ctx context.Context, message domain.MessageData) error
	PublishMessageEdited(ctx context.Context, message domain.MessageData) error
	PublishUserFollowed(ctx context.Context, followee domain.Followee) error
}
