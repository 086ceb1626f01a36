package memstore

import (
	"context"
	"sort"

	"workbindr/domain/entities"
)

type aiMessageRepository struct {
	s *Store
}

func (r *aiMessageRepository) Create(_ context.Context, msg *entities.AiMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	msg.ID = newID()
	msg.CreatedAt = now()
	r.s.aiMessages[msg.ID] = *msg
	return nil
}

func (r *aiMessageRepository) ListByUser(_ context.Context, userID string) ([]*entities.AiMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var messages []*entities.AiMessage
	for _, msg := range r.s.aiMessages {
		if msg.UserID == userID {
			m := msg
			messages = append(messages, &m)
		}
	}
	// Conversation order: oldest first.
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}
