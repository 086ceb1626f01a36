package memstore

import (
	"context"
	"fmt"
	"sort"

	"workbindr/domain/entities"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) GetByID(_ context.Context, id string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(_ context.Context, user *entities.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user.ID = newID()
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepository) Upsert(_ context.Context, identity entities.UserIdentity, defaultReputation float64) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if existing, ok := r.s.users[identity.ID]; ok {
		existing.Email = identity.Email
		existing.DisplayName = identity.DisplayName
		existing.ProfileImageURL = identity.ProfileImageURL
		existing.UpdatedAt = now()
		r.s.users[existing.ID] = existing
		return &existing, nil
	}

	user := entities.User{
		ID:              identity.ID,
		Email:           identity.Email,
		DisplayName:     identity.DisplayName,
		ProfileImageURL: identity.ProfileImageURL,
		ReputationScore: defaultReputation,
		CreatedAt:       now(),
	}
	user.UpdatedAt = user.CreatedAt
	r.s.users[user.ID] = user
	return &user, nil
}

func (r *userRepository) Update(_ context.Context, id string, update entities.UserUpdate) (*entities.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, entities.ErrNotFound)
	}

	if update.DisplayName != nil {
		user.DisplayName = *update.DisplayName
	}
	if update.WalletAddress != nil {
		user.WalletAddress = update.WalletAddress
	}
	if update.ProfileImageURL != nil {
		user.ProfileImageURL = update.ProfileImageURL
	}
	if update.ReputationScore != nil {
		user.ReputationScore = *update.ReputationScore
	}
	user.UpdatedAt = now()
	r.s.users[id] = user
	return &user, nil
}

func (r *userRepository) List(_ context.Context) ([]*entities.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*entities.User, 0, len(r.s.users))
	for _, user := range r.s.users {
		u := user
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}
