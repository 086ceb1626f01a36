package memstore

import (
	"context"

	"workbindr/domain/entities"
)

type platformStatsRepository struct {
	s *Store
}

func (r *platformStatsRepository) Get(_ context.Context) (*entities.PlatformStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := r.ensureLocked()
	snapshot := *stats
	return &snapshot, nil
}

func (r *platformStatsRepository) Update(_ context.Context, update entities.PlatformStatsUpdate) (*entities.PlatformStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := r.ensureLocked()
	if update.ActiveMicroApps != nil {
		stats.ActiveMicroApps = *update.ActiveMicroApps
	}
	if update.TransactionsToday != nil {
		stats.TransactionsToday = *update.TransactionsToday
	}
	if update.DataNodes != nil {
		stats.DataNodes = *update.DataNodes
	}
	if update.Contributors != nil {
		stats.Contributors = *update.Contributors
	}
	stats.UpdatedAt = now()
	snapshot := *stats
	return &snapshot, nil
}

func (r *platformStatsRepository) IncrementTransactionsToday(_ context.Context) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stats := r.ensureLocked()
	stats.TransactionsToday++
	stats.UpdatedAt = now()
	return nil
}

// ensureLocked lazily creates the zeroed single row. Callers must hold the
// write lock.
func (r *platformStatsRepository) ensureLocked() *entities.PlatformStats {
	if r.s.stats == nil {
		r.s.stats = &entities.PlatformStats{
			ID:        newID(),
			UpdatedAt: now(),
		}
	}
	return r.s.stats
}
