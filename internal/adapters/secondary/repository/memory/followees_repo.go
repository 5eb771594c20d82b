package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// FolloweesRepository stores each edge once, in follow order.
type FolloweesRepository struct {
	mu        sync.RWMutex
	followees map[string][]string
}

func NewFolloweesRepository() *FolloweesRepository {
	return &FolloweesRepository{followees: make(map[string][]string)}
}

func (r *FolloweesRepository) FollowUser(_ context.Context, edge domain.Followee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(edge)
	return nil
}

func (r *FolloweesRepository) GetFolloweesOf(_ context.Context, user string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string{}, r.followees[user]...), nil
}

func (r *FolloweesRepository) GivenExistingFollowees(edges ...domain.Followee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range edges {
		r.add(e)
	}
}

func (r *FolloweesRepository) add(edge domain.Followee) {
	if slices.Contains(r.followees[edge.User], edge.Followee) {
		return
	}
	r.followees[edge.User] = append(r.followees[edge.User], edge.Followee)
}
