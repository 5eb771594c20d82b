package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS messages (
	id           TEXT PRIMARY KEY,
	author       TEXT NOT NULL REFERENCES users(name),
	text         TEXT NOT NULL,
	published_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS messages_author_idx ON messages (author);

CREATE TABLE IF NOT EXISTS followees (
	user_name TEXT NOT NULL REFERENCES users(name),
	followee  TEXT NOT NULL REFERENCES users(name),
	followed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_name, followee)
);
`

// EnsureSchema creates the tables if they are missing. Safe to run on every boot.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("db: ensure schema: %w", err)
	}
	return nil
}
