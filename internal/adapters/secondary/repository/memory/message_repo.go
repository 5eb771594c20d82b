package memory

import (
	"context"
	"sync"

	"github.com/MaximeSarrato/crafty/internal/core/domain"
)

// MessageRepository keeps snapshots, never the caller's pointers,
// so a caller mutating a Message does not change what is stored.
type MessageRepository struct {
	mu       sync.RWMutex
	messages map[string]domain.MessageData
	order    []string
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{messages: make(map[string]domain.MessageData)}
}

func (r *MessageRepository) Save(_ context.Context, message *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.put(message.Data())
	return nil
}

func (r *MessageRepository) GetByID(_ context.Context, messageID string) (*domain.Message, error) {
	r.mu.RLock()
	data, ok := r.messages[messageID]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	return domain.NewMessage(data)
}

func (r *MessageRepository) GetAllMessagesOfUser(_ context.Context, author string) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]*domain.Message, 0)
	for _, id := range r.order {
		data := r.messages[id]
		if data.Author != author {
			continue
		}
		m, err := domain.NewMessage(data)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// GivenExistingMessages seeds the store.
func (r *MessageRepository) GivenExistingMessages(messages ...domain.MessageData) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range messages {
		r.put(m)
	}
}

// MessageByID is a test helper; the zero MessageData and false when absent.
func (r *MessageRepository) MessageByID(id string) (domain.MessageData, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.messages[id]
	return data, ok
}

func (r *MessageRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages)
}

func (r *MessageRepository) put(data domain.MessageData) {
	if _, exists := r.messages[data.ID]; !exists {
		r.order = append(r.order, data.ID)
	}
	r.messages[data.ID] = data
}
