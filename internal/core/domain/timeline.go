package domain

import "sort"

// Timeline is a read view over messages, newest first. It is never persisted.
type Timeline struct {
	messages []*Message
}

func NewTimeline(messages []*Message) *Timeline {
	return &Timeline{messages: messages}
}

// Data sorts the backing slice in place on every call, then snapshots it.
// Equal publish times fall back to id ascending.
func (t *Timeline) Data() []MessageData {
	sort.SliceStable(t.messages, func(i, j int) bool {
		a, b := t.messages[i], t.messages[j]
		if !a.PublishedAt().Equal(b.PublishedAt()) {
			return a.PublishedAt().After(b.PublishedAt())
		}
		return a.ID() < b.ID()
	})

	data := make([]MessageData, len(t.messages))
	for i, m := range t.messages {
		data[i] = m.Data()
	}
	return data
}

func (t *Timeline) Len() int {
	return len(t.messages)
}
