package memstore

import (
	"context"

	"workbindr/domain/entities"
)

type settingsRepository struct {
	s *Store
}

func (r *settingsRepository) GetByUserID(_ context.Context, userID string) (*entities.DeveloperSettings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	settings, ok := r.s.settings[userID]
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

// Upsert keys the map by user id, so repeated writes for one user can only
// ever land on one record.
func (r *settingsRepository) Upsert(_ context.Context, userID, preferredLLM string) (*entities.DeveloperSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.settings[userID]; ok {
		existing.PreferredLLM = preferredLLM
		existing.UpdatedAt = now()
		r.s.settings[userID] = existing
		return &existing, nil
	}

	settings := entities.DeveloperSettings{
		ID:           newID(),
		UserID:       userID,
		PreferredLLM: preferredLLM,
		CreatedAt:    now(),
	}
	settings.UpdatedAt = settings.CreatedAt
	r.s.settings[userID] = settings
	return &settings, nil
}
