package services

import (
	"context"
	"fmt"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// userService implements the UserService interface
type userService struct {
	store interfaces.Store
}

// NewUserService creates a new user service
func NewUserService(store interfaces.Store) interfaces.UserService {
	return &userService{store: store}
}

// GetUser retrieves a user by id
func (s *userService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

// CreateUser creates a user from explicit fields
func (s *userService) CreateUser(ctx context.Context, displayName, email string, walletAddress *string, reputationScore float64) (*entities.User, error) {
	ve := &entities.ValidationError{}
	if displayName == "" {
		ve.Add("displayName", "is required")
	}
	if email == "" {
		ve.Add("email", "is required")
	}
	if ve.HasViolations() {
		return nil, ve
	}

	user := &entities.User{
		Email:           email,
		DisplayName:     displayName,
		WalletAddress:   walletAddress,
		ReputationScore: reputationScore,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.WithFields(log.Fields{
		"userID": user.ID,
		"email":  email,
	}).Info("Created user")

	return user, nil
}

// ReconcileIdentity upserts the identity supplied by the auth layer
func (s *userService) ReconcileIdentity(ctx context.Context, identity entities.UserIdentity) (*entities.User, error) {
	ve := &entities.ValidationError{}
	if identity.ID == "" {
		ve.Add("id", "is required")
	}
	if identity.Email == "" {
		ve.Add("email", "is required")
	}
	if ve.HasViolations() {
		return nil, ve
	}

	user, err := s.store.Users().Upsert(ctx, identity, entities.DefaultSignupReputation)
	if err != nil {
		return nil, fmt.Errorf("failed to reconcile identity %s: %w", identity.ID, err)
	}
	return user, nil
}

// UpdateReputation sets a user's reputation score
func (s *userService) UpdateReputation(ctx context.Context, id string, score float64) (*entities.User, error) {
	user, err := s.store.Users().Update(ctx, id, entities.UserUpdate{ReputationScore: &score})
	if err != nil {
		return nil, fmt.Errorf("failed to update reputation for user %s: %w", id, err)
	}

	log.WithFields(log.Fields{
		"userID": id,
		"score":  score,
	}).Info("Updated reputation score")

	return user, nil
}
