package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// diskMessage keeps JSON tags out of the domain.
type diskMessage struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
}

type MessageRepository struct {
	db *badger.DB
}

func NewMessageRepository(db *badger.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Save writes the message and its author index entry in one transaction.
// Overwriting an id stored under another author moves the index entry.
func (r *MessageRepository) Save(_ context.Context, message *domain.Message) error {
	data := message.Data()
	value, err := json.Marshal(diskMessage(data))
	if err != nil {
		return fmt.Errorf("badger: marshal message: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		previous, err := getMessage(txn, data.ID)
		switch {
		case errors.Is(err, badger.ErrKeyNotFound):
		case err != nil:
			return err
		case previous.Author() != data.Author:
			if err := txn.Delete(authorKey(previous.Author(), data.ID)); err != nil {
				return err
			}
		}

		if err := txn.Set(messageKey(data.ID), value); err != nil {
			return err
		}
		return txn.Set(authorKey(data.Author, data.ID), nil)
	})
	if err != nil {
		return fmt.Errorf("badger: save message %s: %w", data.ID, err)
	}
	return nil
}

func (r *MessageRepository) GetByID(_ context.Context, messageID string) (*domain.Message, error) {
	var message *domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		m, err := getMessage(txn, messageID)
		message = m
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("badger: get message %s: %w", messageID, err)
	}
	return message, nil
}

func (r *MessageRepository) GetAllMessagesOfUser(_ context.Context, author string) ([]*domain.Message, error) {
	messages := make([]*domain.Message, 0)
	prefix := authorPrefix(author)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // index entries carry no value

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id := string(it.Item().Key()[len(prefix):])
			m, err := getMessage(txn, id)
			if err != nil {
				return fmt.Errorf("index points to %s: %w", id, err)
			}
			messages = append(messages, m)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger: list messages of %s: %w", author, err)
	}
	return messages, nil
}

func getMessage(txn *badger.Txn, id string) (*domain.Message, error) {
	item, err := txn.Get(messageKey(id))
	if err != nil {
		return nil, err
	}

	var dm diskMessage
	if err := item.Value(func(v []byte) error {
		return json.Unmarshal(v, &dm)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal message %s: %w", id, err)
	}
	return domain.NewMessage(domain.MessageData(dm))
}
