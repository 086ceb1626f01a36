package memstore

import (
	"context"
	"fmt"
	"sort"

	"workbindr/domain/entities"
)

type donorRepository struct {
	s *Store
}

func (r *donorRepository) GetByID(_ context.Context, id string) (*entities.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	donor, ok := r.s.donors[id]
	if !ok {
		return nil, nil
	}
	return &donor, nil
}

func (r *donorRepository) Create(_ context.Context, donor *entities.Donor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	donor.ID = newID()
	donor.CreatedAt = now()
	donor.UpdatedAt = donor.CreatedAt
	r.s.donors[donor.ID] = *donor
	return nil
}

func (r *donorRepository) Update(_ context.Context, id string, update entities.DonorUpdate) (*entities.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	donor, ok := r.s.donors[id]
	if !ok {
		return nil, fmt.Errorf("donor %s: %w", id, entities.ErrNotFound)
	}

	if update.Name != nil {
		donor.Name = *update.Name
	}
	if update.Email != nil {
		donor.Email = *update.Email
	}
	if update.TotalDonated != nil {
		donor.TotalDonated = *update.TotalDonated
	}
	if update.DonationCount != nil {
		donor.DonationCount = *update.DonationCount
	}
	if update.Status != nil {
		donor.Status = *update.Status
	}
	donor.UpdatedAt = now()
	r.s.donors[id] = donor
	return &donor, nil
}

func (r *donorRepository) List(_ context.Context) ([]*entities.Donor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	donors := make([]*entities.Donor, 0, len(r.s.donors))
	for _, donor := range r.s.donors {
		d := donor
		donors = append(donors, &d)
	}
	sort.Slice(donors, func(i, j int) bool {
		return donors[i].CreatedAt.After(donors[j].CreatedAt)
	})
	return donors, nil
}
