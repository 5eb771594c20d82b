package neo4j

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/require"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// Set CRAFTY_TEST_NEO4J_URI (and optionally _USER/_PASSWORD) to run against a live Neo4j.
func TestFolloweesRepository(t *testing.T) {
	uri := os.Getenv("CRAFTY_TEST_NEO4J_URI")
	if uri == "" {
		t.Skip("CRAFTY_TEST_NEO4J_URI not set")
	}
	ctx := context.Background()
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(
		os.Getenv("CRAFTY_TEST_NEO4J_USER"), os.Getenv("CRAFTY_TEST_NEO4J_PASSWORD"), ""))
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close(ctx) })

	repo := NewFolloweesRepository(driver)
	require.NoError(t, repo.EnsureSchema(ctx))
	user := "alice-" + uuid.NewString()

	t.Run("should merge repeated follows into one edge", func(t *testing.T) {
		req := require.New(t)
		req.NoError(repo.FollowUser(ctx, domain.Followee{User: user, Followee: "bob"}))
		req.NoError(repo.FollowUser(ctx, domain.Followee{User: user, Followee: "bob"}))

		got, err := repo.GetFolloweesOf(ctx, user)
		req.NoError(err)
		req.Equal([]string{"bob"}, got)
	})

	t.Run("should return an empty list for an unknown user", func(t *testing.T) {
		req := require.New(t)
		got, err := repo.GetFolloweesOf(ctx, "nobody-"+uuid.NewString())
		req.NoError(err)
		req.Empty(got)
	})
}
