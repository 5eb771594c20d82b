package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// sqlMessage buffers a row before it becomes a domain.Message.
type sqlMessage struct {
	ID          string    `db:"id"`
	Author      string    `db:"author"`
	Text        string    `db:"text"`
	PublishedAt time.Time `db:"published_at"`
}

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: pool}
}

// Save upserts the author, then the message.
func (r *MessageRepository) Save(ctx context.Context, message *domain.Message) error {
	data := message.Data()
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := upsertUsers(ctx, tx, data.Author); err != nil {
			return err
		}

		q := `
			INSERT INTO messages (id, author, text, published_at)
			VALUES (@id, @author, @text, @published_at)
			ON CONFLICT (id) DO UPDATE
			SET author = EXCLUDED.author, text = EXCLUDED.text, published_at = EXCLUDED.published_at
		`
		_, err := tx.Exec(ctx, q, pgx.NamedArgs{
			"id":           data.ID,
			"author":       data.Author,
			"text":         data.Text,
			"published_at": data.PublishedAt,
		})
		return err
	})
	if err != nil {
		return handleError("save message", err)
	}
	return nil
}

func (r *MessageRepository) GetByID(ctx context.Context, messageID string) (*domain.Message, error) {
	q := `SELECT id, author, text, published_at FROM messages WHERE id = $1`

	rows, err := r.db.Query(ctx, q, messageID)
	if err != nil {
		return nil, handleError("get message", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[sqlMessage])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, handleError("get message", err)
	}
	return toDomain(row)
}

func (r *MessageRepository) GetAllMessagesOfUser(ctx context.Context, author string) ([]*domain.Message, error) {
	q := `SELECT id, author, text, published_at FROM messages WHERE author = $1`

	rows, err := r.db.Query(ctx, q, author)
	if err != nil {
		return nil, handleError("list messages", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[sqlMessage])
	if err != nil {
		return nil, handleError("list messages", err)
	}

	messages := make([]*domain.Message, 0, len(found))
	for _, row := range found {
		m, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

func toDomain(row sqlMessage) (*domain.Message, error) {
	m, err := domain.NewMessage(domain.MessageData{
		ID:          row.ID,
		Author:      row.Author,
		Text:        row.Text,
		PublishedAt: row.PublishedAt.UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("db: corrupt message %s: %w", row.ID, err)
	}
	return m, nil
}

// upsertUsers makes sure every name has a users row.
func upsertUsers(ctx context.Context, tx pgx.Tx, names ...string) error {
	batch := &pgx.Batch{}
	for _, name := range names {
		batch.Queue(`INSERT INTO users (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	}
	return tx.SendBatch(ctx, batch).Close()
}

// handleError keeps the Postgres error code visible in the wrapped message.
func handleError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("db: %s (sqlstate %s): %w", op, pgErr.Code, err)
	}
	return fmt.Errorf("db: %s: %w", op, err)
}
