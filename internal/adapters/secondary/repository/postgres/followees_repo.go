package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

type FolloweesRepository struct {
	db *pgxpool.Pool
}

func NewFolloweesRepository(pool *pgxpool.Pool) *FolloweesRepository {
	return &FolloweesRepository{db: pool}
}

// FollowUser upserts both users, then the edge. Following twice is a no-op.
func (r *FolloweesRepository) FollowUser(ctx context.Context, edge domain.Followee) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := upsertUsers(ctx, tx, edge.User, edge.Followee); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO followees (user_name, followee)
			VALUES (@user, @followee)
			ON CONFLICT (user_name, followee) DO NOTHING
		`, pgx.NamedArgs{"user": edge.User, "followee": edge.Followee})
		return err
	})
	if err != nil {
		return handleError("follow user", err)
	}
	return nil
}

func (r *FolloweesRepository) GetFolloweesOf(ctx context.Context, user string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT followee FROM followees
		WHERE user_name = $1
		ORDER BY followed_at, followee
	`, user)
	if err != nil {
		return nil, handleError("list followees", err)
	}
	followees, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, handleError("list followees", err)
	}
	if followees == nil {
		followees = []string{}
	}
	return followees, nil
}
