package presenter

import (
	"fmt"
	"time"

	"github.com/samber/lo"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
)

// MessageView is a message ready for humans.
type MessageView struct {
	Author          string
	Text            string
	PublicationTime string
}

// TimelineFormatter renders timelines relative to the injected clock.
type TimelineFormatter struct {
	clock ports.DateProvider
}

func NewTimelineFormatter(clock ports.DateProvider) *TimelineFormatter {
	return &TimelineFormatter{clock: clock}
}

func (f *TimelineFormatter) Format(timeline *domain.Timeline) []MessageView {
	now := f.clock.Now()
	return lo.Map(timeline.Data(), func(m domain.MessageData, _ int) MessageView {
		return MessageView{
			Author:          m.Author,
			Text:            m.Text,
			PublicationTime: PublicationTime(now, m.PublishedAt),
		}
	})
}

// PublicationTime floors to whole minutes.
func PublicationTime(now, publishedAt time.Time) string {
	minutes := int(now.Sub(publishedAt) / time.Minute)
	switch {
	case minutes < 1:
		return "less than a minute ago"
	case minutes < 2:
		return "1 minute ago"
	default:
		return fmt.Sprintf("%d minutes ago", minutes)
	}
}
