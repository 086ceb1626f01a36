package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
)

// aiMessageRepository implements the AiMessageRepository interface
type aiMessageRepository struct {
	q Queryable
}

// Create persists one assistant exchange
func (r *aiMessageRepository) Create(ctx context.Context, msg *entities.AiMessage) error {
	query := `
		INSERT INTO ai_messages (id, user_id, message, response)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	msg.ID = uuid.NewString()
	err := r.q.QueryRow(ctx, query, msg.ID, msg.UserID, msg.Message, msg.Response).Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ai message: %w", err)
	}
	return nil
}

// ListByUser returns a user's exchanges in conversation order
func (r *aiMessageRepository) ListByUser(ctx context.Context, userID string) ([]*entities.AiMessage, error) {
	query := `
		SELECT id, user_id, message, response, created_at
		FROM ai_messages
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ai messages for user %s: %w", userID, err)
	}
	defer rows.Close()

	var messages []*entities.AiMessage
	for rows.Next() {
		var msg entities.AiMessage
		if err := rows.Scan(&msg.ID, &msg.UserID, &msg.Message, &msg.Response, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ai message: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ai messages: %w", err)
	}
	return messages, nil
}
