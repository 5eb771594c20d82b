package presenter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MaximeSarrato/crafty/internal/adapters/secondary/clock"
	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

func TestPublicationTime(t *testing.T) {
	now := time.Date(2023, 2, 9, 15, 15, 30, 0, time.UTC)

	cases := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"should say less than a minute for a fresh message", 30 * time.Second, "less than a minute ago"},
		{"should say less than a minute right now", 0, "less than a minute ago"},
		{"should say one minute", time.Minute, "1 minute ago"},
		{"should floor to one minute", 119 * time.Second, "1 minute ago"},
		{"should count minutes", 2 * time.Minute, "2 minutes ago"},
		{"should floor minutes", 15*time.Minute + 59*time.Second, "15 minutes ago"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PublicationTime(now, now.Add(-tc.ago)))
		})
	}
}

func TestTimelineFormatter(t *testing.T) {
	t.Run("should render a wall newest first", func(t *testing.T) {
		req := require.New(t)
		now := time.Date(2023, 2, 9, 15, 15, 30, 0, time.UTC)
		alice, _ := domain.NewMessage(domain.MessageData{ID: "m1", Author: "Alice", Text: "I love the weather today", PublishedAt: time.Date(2023, 2, 9, 15, 0, 30, 0, time.UTC)})
		charlie, _ := domain.NewMessage(domain.MessageData{ID: "m2", Author: "Charlie", Text: "Anyone wants to have a coffee?", PublishedAt: time.Date(2023, 2, 9, 15, 15, 0, 0, time.UTC)})

		views := NewTimelineFormatter(clock.NewStubDateProvider(now)).Format(domain.NewTimeline([]*domain.Message{alice, charlie}))

		req.Equal([]MessageView{
			{Author: "Charlie", Text: "Anyone wants to have a coffee?", PublicationTime: "less than a minute ago"},
			{Author: "Alice", Text: "I love the weather today", PublicationTime: "15 minutes ago"},
		}, views)
	})
}
