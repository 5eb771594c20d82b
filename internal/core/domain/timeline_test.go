package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustMessage(t *testing.T, id, author string, at time.Time) *Message {
	t.Helper()
	m, err := NewMessage(MessageData{ID: id, Author: author, Text: "text of " + id, PublishedAt: at})
	require.NoError(t, err)
	return m
}

func TestTimeline(t *testing.T) {
	base := time.Date(2023, 2, 9, 15, 0, 0, 0, time.UTC)

	t.Run("should order newest first", func(t *testing.T) {
		req := require.New(t)
		tl := NewTimeline([]*Message{
			mustMessage(t, "m1", "Alice", base),
			mustMessage(t, "m3", "Alice", base.Add(2*time.Minute)),
			mustMessage(t, "m2", "Bob", base.Add(time.Minute)),
		})

		data := tl.Data()
		req.Len(data, 3)
		req.Equal("m3", data[0].ID)
		req.Equal("m2", data[1].ID)
		req.Equal("m1", data[2].ID)
		req.Equal(3, tl.Len())
	})

	t.Run("should break ties by id", func(t *testing.T) {
		req := require.New(t)
		tl := NewTimeline([]*Message{
			mustMessage(t, "b", "Alice", base),
			mustMessage(t, "a", "Bob", base),
		})

		data := tl.Data()
		req.Equal("a", data[0].ID)
		req.Equal("b", data[1].ID)
	})

	t.Run("should return the same order on every call", func(t *testing.T) {
		req := require.New(t)
		tl := NewTimeline([]*Message{
			mustMessage(t, "m1", "Alice", base),
			mustMessage(t, "m2", "Alice", base.Add(time.Second)),
		})
		req.Equal(tl.Data(), tl.Data())
	})

	t.Run("should keep duplicates", func(t *testing.T) {
		req := require.New(t)
		m := mustMessage(t, "m1", "Alice", base)
		tl := NewTimeline([]*Message{m, m})
		req.Len(tl.Data(), 2)
	})

	t.Run("should be empty without messages", func(t *testing.T) {
		req := require.New(t)
		tl := NewTimeline(nil)
		req.Empty(tl.Data())
		req.Equal(0, tl.Len())
	})
}
