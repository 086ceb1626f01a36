package services

import (
	"context"
	"fmt"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// assistantService implements the AssistantService interface
type assistantService struct {
	store  interfaces.Store
	client interfaces.AssistantClient
}

// NewAssistantService creates a new assistant service
func NewAssistantService(store interfaces.Store, client interfaces.AssistantClient) interfaces.AssistantService {
	return &assistantService{
		store:  store,
		client: client,
	}
}

// Chat sends the user's message to the model, persists the exchange and
// returns it. The model is the user's preferred LLM when settings exist,
// otherwise the default.
func (s *assistantService) Chat(ctx context.Context, userID, message string) (*entities.AiMessage, error) {
	ve := &entities.ValidationError{}
	if userID == "" {
		ve.Add("userId", "is required")
	}
	if message == "" {
		ve.Add("message", "is required")
	}
	if ve.HasViolations() {
		return nil, ve
	}

	model := entities.DefaultPreferredLLM
	settings, err := s.store.Settings().GetByUserID(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("userID", userID).
			Warn("Failed to load settings, using default model")
	} else if settings != nil {
		model = settings.PreferredLLM
	}

	response, err := s.client.Generate(ctx, model, message)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}

	msg := &entities.AiMessage{
		UserID:   userID,
		Message:  message,
		Response: response,
	}
	if err := s.store.AiMessages().Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to persist assistant exchange: %w", err)
	}

	log.WithFields(log.Fields{
		"userID":    userID,
		"messageID": msg.ID,
		"model":     model,
	}).Info("Assistant exchange completed")

	return msg, nil
}

// History returns a user's exchanges in conversation order
func (s *assistantService) History(ctx context.Context, userID string) ([]*entities.AiMessage, error) {
	messages, err := s.store.AiMessages().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assistant history for user %s: %w", userID, err)
	}
	return messages, nil
}
