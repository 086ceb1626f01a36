package memstore

import (
	"context"
	"fmt"
	"sort"

	"workbindr/domain/entities"
)

type microAppRepository struct {
	s *Store
}

func (r *microAppRepository) GetByID(_ context.Context, id string) (*entities.MicroApp, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	app, ok := r.s.microApps[id]
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (r *microAppRepository) Create(_ context.Context, app *entities.MicroApp) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	app.ID = newID()
	app.CreatedAt = now()
	r.s.microApps[app.ID] = *app
	return nil
}

func (r *microAppRepository) List(_ context.Context) ([]*entities.MicroApp, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	apps := make([]*entities.MicroApp, 0, len(r.s.microApps))
	for _, app := range r.s.microApps {
		a := app
		apps = append(apps, &a)
	}
	// Seeded apps share a creation instant, so fall back to name for a
	// stable listing.
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].CreatedAt.Equal(apps[j].CreatedAt) {
			return apps[i].Name < apps[j].Name
		}
		return apps[i].CreatedAt.Before(apps[j].CreatedAt)
	})
	return apps, nil
}

func (r *microAppRepository) IncrementTransactionCount(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	app, ok := r.s.microApps[id]
	if !ok {
		return fmt.Errorf("micro-app %s: %w", id, entities.ErrNotFound)
	}
	app.TransactionCount++
	r.s.microApps[id] = app
	return nil
}
