package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
	"github.com/MaximeSarrato/crafty/internal/core/ports"
)

var _ ports.TimelinePresenter = (*timelinePresenter)(nil)

type messageResponse struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"publishedAt"`
}

// timelinePresenter collects the timeline for the handler to encode.
type timelinePresenter struct {
	messages []messageResponse
}

func (p *timelinePresenter) Present(timeline *domain.Timeline) {
	p.messages = lo.Map(timeline.Data(), func(m domain.MessageData, _ int) messageResponse {
		return messageResponse{ID: m.ID, Author: m.Author, Text: m.Text, PublishedAt: m.PublishedAt}
	})
}
