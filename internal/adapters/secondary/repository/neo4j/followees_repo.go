package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// FolloweesRepository stores follows as (:User)-[:FOLLOWS]->(:User).
type FolloweesRepository struct {
	driver neo4j.DriverWithContext
}

func NewFolloweesRepository(driver neo4j.DriverWithContext) *FolloweesRepository {
	return &FolloweesRepository{driver: driver}
}

// EnsureSchema adds the uniqueness constraint on User.name (which also indexes it).
func (r *FolloweesRepository) EnsureSchema(ctx context.Context) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `CREATE CONSTRAINT user_name_unique IF NOT EXISTS FOR (u:User) REQUIRE u.name IS UNIQUE`
		_, err := tx.Run(ctx, query, nil)
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("neo4j: ensure schema: %w", err)
	}
	return nil
}

// FollowUser is idempotent: MERGE creates the nodes and the edge only when missing.
func (r *FolloweesRepository) FollowUser(ctx context.Context, edge domain.Followee) error {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MERGE (a:User {name: $user})
			MERGE (b:User {name: $followee})
			MERGE (a)-[r:FOLLOWS]->(b)
			ON CREATE SET r.created_at = datetime()
		`
		_, err := tx.Run(ctx, query, map[string]any{
			"user":     edge.User,
			"followee": edge.Followee,
		})
		return nil, err
	})
	if err != nil {
		return fmt.Errorf("neo4j: follow user: %w", err)
	}
	return nil
}

func (r *FolloweesRepository) GetFolloweesOf(ctx context.Context, user string) ([]string, error) {
	session := r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		query := `
			MATCH (:User {name: $user})-[r:FOLLOWS]->(f:User)
			RETURN f.name AS followee
			ORDER BY r.created_at, f.name
		`
		res, err := tx.Run(ctx, query, map[string]any{"user": user})
		if err != nil {
			return nil, err
		}

		followees := []string{}
		for res.Next(ctx) {
			name, _, err := neo4j.GetRecordValue[string](res.Record(), "followee")
			if err != nil {
				return nil, err
			}
			followees = append(followees, name)
		}
		return followees, res.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: list followees: %w", err)
	}
	return result.([]string), nil
}
