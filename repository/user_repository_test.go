package repository

import (
	"context"
	"testing"

	"workbindr/domain/entities"
	"workbindr/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	t.Run("no user found", func(t *testing.T) {
		user, err := store.Users().GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("user found", func(t *testing.T) {
		created := testutil.CreateTestUser("dev@example.com", "Dev")
		require.NoError(t, store.Users().Create(ctx, created))

		user, err := store.Users().GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "dev@example.com", user.Email)
		assert.Equal(t, entities.DefaultSignupReputation, user.ReputationScore)
	})

	t.Run("lookup by email", func(t *testing.T) {
		user, err := store.Users().GetByEmail(ctx, "dev@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "Dev", user.DisplayName)

		user, err = store.Users().GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_Upsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	identity := entities.UserIdentity{
		ID:          "auth-1",
		Email:       "new@example.com",
		DisplayName: "New User",
	}

	t.Run("first login creates with default reputation", func(t *testing.T) {
		user, err := store.Users().Upsert(ctx, identity, entities.DefaultSignupReputation)
		require.NoError(t, err)
		assert.Equal(t, "auth-1", user.ID)
		assert.Equal(t, entities.DefaultSignupReputation, user.ReputationScore)
	})

	t.Run("second login refreshes profile and keeps score", func(t *testing.T) {
		score := 91.0
		_, err := store.Users().Update(ctx, "auth-1", entities.UserUpdate{ReputationScore: &score})
		require.NoError(t, err)

		identity.DisplayName = "Renamed User"
		user, err := store.Users().Upsert(ctx, identity, entities.DefaultSignupReputation)
		require.NoError(t, err)
		assert.Equal(t, "Renamed User", user.DisplayName)
		assert.Equal(t, 91.0, user.ReputationScore)

		users, err := store.Users().List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestUserRepository_Update(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	created := testutil.CreateTestUserWithReputation("dev@example.com", "Dev", 60)
	require.NoError(t, store.Users().Create(ctx, created))

	t.Run("nil fields keep stored values", func(t *testing.T) {
		wallet := "0xabc123"
		user, err := store.Users().Update(ctx, created.ID, entities.UserUpdate{WalletAddress: &wallet})
		require.NoError(t, err)
		require.NotNil(t, user.WalletAddress)
		assert.Equal(t, "0xabc123", *user.WalletAddress)
		assert.Equal(t, "Dev", user.DisplayName)
		assert.Equal(t, 60.0, user.ReputationScore)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		user, err := store.Users().Update(ctx, created.ID, entities.UserUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Dev", user.DisplayName)
		require.NotNil(t, user.WalletAddress)
		assert.Equal(t, "0xabc123", *user.WalletAddress)
	})

	t.Run("unknown user", func(t *testing.T) {
		name := "Nobody"
		_, err := store.Users().Update(ctx, "missing", entities.UserUpdate{DisplayName: &name})
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}
