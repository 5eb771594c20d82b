package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// FolloweesRepository keeps one sorted set per user, scored by follow time,
// so followees come back in the order they were followed.
type FolloweesRepository struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewFolloweesRepository(client redis.UniversalClient) *FolloweesRepository {
	return &FolloweesRepository{client: client, now: time.Now}
}

func followeesKey(user string) string {
	return fmt.Sprintf("followees:%s", user)
}

// FollowUser uses ZADD NX: a repeated follow keeps its original score.
func (r *FolloweesRepository) FollowUser(ctx context.Context, edge domain.Followee) error {
	err := r.client.ZAddNX(ctx, followeesKey(edge.User), redis.Z{
		Score:  float64(r.now().UnixNano()),
		Member: edge.Followee,
	}).Err()
	if err != nil {
		return fmt.Errorf("redis: follow user: %w", err)
	}
	return nil
}

func (r *FolloweesRepository) GetFolloweesOf(ctx context.Context, user string) ([]string, error) {
	followees, err := r.client.ZRange(ctx, followeesKey(user), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: list followees: %w", err)
	}
	if followees == nil {
		followees = []string{}
	}
	return followees, nil
}
