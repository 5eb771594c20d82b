package eventbroker

import (
	"context"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishMessagePosted(context.Context, domain.MessageData) error { return nil }
func (NopPublisher) PublishMessageEdited(context.Context, domain.MessageData) error { return nil }
func (NopPublisher) PublishUserFollowed(context.Context, domain.Followee) error     { return nil }
func (NopPublisher) Close() error                                                  { return nil }
