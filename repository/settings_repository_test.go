package repository

import (
	"context"
	"testing"

	"workbindr/domain/entities"
	"workbindr/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Upsert(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	user := testutil.CreateTestUser("dev@example.com", "Dev")
	require.NoError(t, store.Users().Create(ctx, user))

	t.Run("no settings written yet", func(t *testing.T) {
		settings, err := store.Settings().GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, settings)
	})

	t.Run("first save creates the row", func(t *testing.T) {
		settings, err := store.Settings().Upsert(ctx, user.ID, entities.LLMGeminiPro)
		require.NoError(t, err)
		assert.NotEmpty(t, settings.ID)
		assert.Equal(t, entities.LLMGeminiPro, settings.PreferredLLM)
	})

	t.Run("second save keeps one row per user", func(t *testing.T) {
		first, err := store.Settings().GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := store.Settings().Upsert(ctx, user.ID, entities.LLMGemini15Flash)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, entities.LLMGemini15Flash, second.PreferredLLM)
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt) || second.UpdatedAt.Equal(first.UpdatedAt))

		stored, err := store.Settings().GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, entities.LLMGemini15Flash, stored.PreferredLLM)
	})
}
