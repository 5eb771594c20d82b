package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// FolloweesRepository has one empty-valued key per edge; reads come back
// sorted by followee name.
type FolloweesRepository struct {
	db *badger.DB
}

func NewFolloweesRepository(db *badger.DB) *FolloweesRepository {
	return &FolloweesRepository{db: db}
}

func (r *FolloweesRepository) FollowUser(_ context.Context, edge domain.Followee) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(followKey(edge.User, edge.Followee), nil)
	})
	if err != nil {
		return fmt.Errorf("badger: follow user: %w", err)
	}
	return nil
}

func (r *FolloweesRepository) GetFolloweesOf(_ context.Context, user string) ([]string, error) {
	followees := []string{}
	prefix := followPrefix(user)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			followees = append(followees, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger: list followees of %s: %w", user, err)
	}
	return followees, nil
}
