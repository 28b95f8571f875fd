package memory

import (
	"context"
	"sort"
	"sync"

	"alumninet/internal/core/domain"
	"alumninet/internal/core/ports"
)

type MemoryMessageRepository struct {
	messages []*domain.Message
	mu       sync.RWMutex
}

func NewMemoryMessageRepository() ports.MessageRepository {
	return &MemoryMessageRepository{}
}

func (r *MemoryMessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *msg
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *MemoryMessageRepository) ListConversation(ctx context.Context, a, b domain.UserID) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Message
	for _, msg := range r.messages {
		if (msg.SenderID == a && msg.ReceiverID == b) || (msg.SenderID == b && msg.ReceiverID == a) {
			copied := *msg
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}
