package services

import (
	"context"
	"errors"
	"testing"

	"workbindr/domain/entities"
	"workbindr/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileIdentity_PassesDefaultReputation(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewUserService(store)

	identity := entities.UserIdentity{ID: "auth-1", Email: "dev@example.com", DisplayName: "Dev"}
	stored := &entities.User{ID: "auth-1", Email: "dev@example.com", ReputationScore: 91}
	store.UserRepo.On("Upsert", ctx, identity, entities.DefaultSignupReputation).Return(stored, nil)

	user, err := service.ReconcileIdentity(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, 91.0, user.ReputationScore)
	store.AssertExpectations(t)
}

func TestReconcileIdentity_RequiresIDAndEmail(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewUserService(store)

	user, err := service.ReconcileIdentity(ctx, entities.UserIdentity{DisplayName: "Dev"})

	assert.Nil(t, user)
	var ve *entities.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "id")
	assert.Contains(t, ve.Fields, "email")
	store.UserRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateUser_RequiresNameAndEmail(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewUserService(store)

	user, err := service.CreateUser(ctx, "", "", nil, 0)

	assert.Nil(t, user)
	var ve *entities.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "displayName")
	assert.Contains(t, ve.Fields, "email")
}

func TestUpdateReputation_PropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewUserService(store)

	store.UserRepo.On("Update", ctx, "missing", mock.AnythingOfType("entities.UserUpdate")).
		Return(nil, entities.ErrNotFound)

	user, err := service.UpdateReputation(ctx, "missing", 80)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	store.AssertExpectations(t)
}
