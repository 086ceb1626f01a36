package services

import (
	"context"
	"fmt"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"
)

// statsService implements the StatsService interface
type statsService struct {
	store interfaces.Store
}

// NewStatsService creates a new stats service
func NewStatsService(store interfaces.Store) interfaces.StatsService {
	return &statsService{store: store}
}

// PlatformStats returns the single stats row, creating a zeroed one on
// first read
func (s *statsService) PlatformStats(ctx context.Context) (*entities.PlatformStats, error) {
	stats, err := s.store.PlatformStats().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}
	return stats, nil
}

// UpdatePlatformStats merges a partial update over the stats row
func (s *statsService) UpdatePlatformStats(ctx context.Context, update entities.PlatformStatsUpdate) (*entities.PlatformStats, error) {
	stats, err := s.store.PlatformStats().Update(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update platform stats: %w", err)
	}
	return stats, nil
}
