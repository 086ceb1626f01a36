package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/jackc/pgx/v5"
)

// platformStatsRepository implements the PlatformStatsRepository interface.
// The table holds a single row under a fixed key, created on first read.
type platformStatsRepository struct {
	q Queryable
}

// platformStatsID keys the one stats row. The fixed primary key makes the
// lazy create idempotent: concurrent first reads conflict on it instead of
// inserting duplicate rows.
const platformStatsID = "singleton"

const platformStatsColumns = `id, active_micro_apps, transactions_today, data_nodes, contributors, updated_at`

func scanPlatformStats(row pgx.Row) (*entities.PlatformStats, error) {
	var stats entities.PlatformStats
	err := row.Scan(
		&stats.ID,
		&stats.ActiveMicroApps,
		&stats.TransactionsToday,
		&stats.DataNodes,
		&stats.Contributors,
		&stats.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Get returns the stats row, creating a zeroed one if none exists
func (r *platformStatsRepository) Get(ctx context.Context) (*entities.PlatformStats, error) {
	query := `SELECT ` + platformStatsColumns + ` FROM platform_stats WHERE id = $1`

	stats, err := scanPlatformStats(r.q.QueryRow(ctx, query, platformStatsID))
	if err == pgx.ErrNoRows {
		return r.create(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}
	return stats, nil
}

func (r *platformStatsRepository) create(ctx context.Context) (*entities.PlatformStats, error) {
	insert := `
		INSERT INTO platform_stats (id, active_micro_apps, transactions_today, data_nodes, contributors)
		VALUES ($1, 0, 0, 0, 0)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, insert, platformStatsID); err != nil {
		return nil, fmt.Errorf("failed to create platform stats: %w", err)
	}

	// Read back whichever insert won.
	query := `SELECT ` + platformStatsColumns + ` FROM platform_stats WHERE id = $1`
	stats, err := scanPlatformStats(r.q.QueryRow(ctx, query, platformStatsID))
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}
	return stats, nil
}

// Update merges a partial update over the stats row
func (r *platformStatsRepository) Update(ctx context.Context, update entities.PlatformStatsUpdate) (*entities.PlatformStats, error) {
	if _, err := r.Get(ctx); err != nil {
		return nil, err
	}

	query := `
		UPDATE platform_stats SET
			active_micro_apps = COALESCE($2, active_micro_apps),
			transactions_today = COALESCE($3, transactions_today),
			data_nodes = COALESCE($4, data_nodes),
			contributors = COALESCE($5, contributors),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + platformStatsColumns + `
	`

	stats, err := scanPlatformStats(r.q.QueryRow(ctx, query,
		platformStatsID,
		update.ActiveMicroApps,
		update.TransactionsToday,
		update.DataNodes,
		update.Contributors,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update platform stats: %w", err)
	}
	return stats, nil
}

// IncrementTransactionsToday bumps the daily counter in place. The increment
// is a single statement so concurrent transaction creates cannot lose updates.
func (r *platformStatsRepository) IncrementTransactionsToday(ctx context.Context) error {
	query := `
		UPDATE platform_stats
		SET transactions_today = transactions_today + 1, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, platformStatsID)
	if err != nil {
		return fmt.Errorf("failed to increment transactions today: %w", err)
	}
	if result.RowsAffected() == 0 {
		if _, err := r.create(ctx); err != nil {
			return err
		}
		return r.IncrementTransactionsToday(ctx)
	}
	return nil
}
