package repository

import (
	"context"
	"sync"
	"testing"

	"workbindr/domain/entities"
	"workbindr/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformStatsRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	t.Run("first read creates a zeroed row", func(t *testing.T) {
		stats, err := store.PlatformStats().Get(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, stats.ID)
		assert.Equal(t, 0, stats.TransactionsToday)
	})

	t.Run("partial update keeps other counters", func(t *testing.T) {
		nodes := 1247
		stats, err := store.PlatformStats().Update(ctx, entities.PlatformStatsUpdate{DataNodes: &nodes})
		require.NoError(t, err)
		assert.Equal(t, 1247, stats.DataNodes)
		assert.Equal(t, 0, stats.TransactionsToday)
	})

	t.Run("increment bumps the daily counter", func(t *testing.T) {
		require.NoError(t, store.PlatformStats().IncrementTransactionsToday(ctx))

		stats, err := store.PlatformStats().Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.TransactionsToday)
		assert.Equal(t, 1247, stats.DataNodes)
	})
}

func TestPlatformStatsRepository_SingleRowUnderConcurrency(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	store := NewStore(testDB.DB)
	ctx := context.Background()

	rowCount := func() int {
		var count int
		err := testDB.DB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM platform_stats").Scan(&count)
		require.NoError(t, err)
		return count
	}

	t.Run("concurrent first reads create one row", func(t *testing.T) {
		const readers = 8
		var wg sync.WaitGroup
		wg.Add(readers)
		for i := 0; i < readers; i++ {
			go func() {
				defer wg.Done()
				_, err := store.PlatformStats().Get(ctx)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, rowCount())
	})

	t.Run("concurrent increments all land on the one row", func(t *testing.T) {
		const increments = 10
		var wg sync.WaitGroup
		wg.Add(increments)
		for i := 0; i < increments; i++ {
			go func() {
				defer wg.Done()
				assert.NoError(t, store.PlatformStats().IncrementTransactionsToday(ctx))
			}()
		}
		wg.Wait()

		stats, err := store.PlatformStats().Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, increments, stats.TransactionsToday)
		assert.Equal(t, 1, rowCount())
	})
}
