package repository

import (
	"context"
	"testing"

	"workbindr/domain/entities"
	"workbindr/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMicroAppRepository_IncrementTransactionCount(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	app := testutil.CreateTestMicroApp("Smart Invoicing")
	require.NoError(t, store.MicroApps().Create(ctx, app))

	t.Run("counter moves by one per call", func(t *testing.T) {
		require.NoError(t, store.MicroApps().IncrementTransactionCount(ctx, app.ID))
		require.NoError(t, store.MicroApps().IncrementTransactionCount(ctx, app.ID))

		current, err := store.MicroApps().GetByID(ctx, app.ID)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, 2, current.TransactionCount)
	})

	t.Run("unknown micro-app", func(t *testing.T) {
		err := store.MicroApps().IncrementTransactionCount(ctx, "missing")
		assert.ErrorIs(t, err, entities.ErrNotFound)
	})
}

func TestMicroAppRepository_List(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		apps, err := store.MicroApps().List(ctx)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})

	t.Run("returns all apps", func(t *testing.T) {
		for _, name := range []string{"Customer Hub", "Task Flow", "Doc Manager"} {
			require.NoError(t, store.MicroApps().Create(ctx, testutil.CreateTestMicroApp(name)))
		}

		apps, err := store.MicroApps().List(ctx)
		require.NoError(t, err)
		assert.Len(t, apps, 3)
	})

	t.Run("app not found", func(t *testing.T) {
		app, err := store.MicroApps().GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, app)
	})
}
