package services

import (
	"context"
	"fmt"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"
)

// settingsService implements the SettingsService interface
type settingsService struct {
	store interfaces.Store
}

// NewSettingsService creates a new settings service
func NewSettingsService(store interfaces.Store) interfaces.SettingsService {
	return &settingsService{store: store}
}

// GetSettings returns a user's settings. Users who never wrote settings get
// the defaults back without a row being created.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*entities.DeveloperSettings, error) {
	settings, err := s.store.Settings().GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for user %s: %w", userID, err)
	}
	if settings == nil {
		return &entities.DeveloperSettings{
			UserID:       userID,
			PreferredLLM: entities.DefaultPreferredLLM,
		}, nil
	}
	return settings, nil
}

// UpdateSettings upserts a user's preferred LLM. The selection is a closed
// enumeration; unknown names are rejected before anything is written.
func (s *settingsService) UpdateSettings(ctx context.Context, userID, preferredLLM string) (*entities.DeveloperSettings, error) {
	if userID == "" {
		return nil, entities.NewValidationError("userId", "is required")
	}
	if !entities.ValidPreferredLLM(preferredLLM) {
		return nil, entities.NewValidationError("preferredLLM", "is not a supported model")
	}

	settings, err := s.store.Settings().Upsert(ctx, userID, preferredLLM)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings for user %s: %w", userID, err)
	}
	return settings, nil
}
