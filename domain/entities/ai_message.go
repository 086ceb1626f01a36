package entities

import (
	"time"
)

// AiMessage is one persisted assistant exchange: the user's prompt and the
// model's reply.
type AiMessage struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Message   string    `db:"message" json:"message"`
	Response  string    `db:"response" json:"response"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// NewAiMessage holds the fields accepted on create.
type NewAiMessage struct {
	UserID   string
	Message  string
	Response string
}

// Validate checks required fields for an assistant message create.
func (n *NewAiMessage) Validate() error {
	ve := &ValidationError{}
	if n.UserID == "" {
		ve.Add("userId", "is required")
	}
	if n.Message == "" {
		ve.Add("message", "is required")
	}
	if ve.HasViolations() {
		return ve
	}
	return nil
}
